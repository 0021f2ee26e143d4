package ballast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// OriginList is an allow-list of cross-origin hosts. In documents it is a
// plain sequence of strings; in an environment variable it must be a JSON
// array literal (e.g. `["https://a.example"]`).
type OriginList []string

// UnmarshalText parses the environment-variable form. Malformed array text
// fails the build rather than degrading to an empty list.
func (o *OriginList) UnmarshalText(text []byte) error {
	if len(bytes.TrimSpace(text)) == 0 {
		*o = nil
		return nil
	}
	var origins []string
	if err := json.Unmarshal(text, &origins); err != nil {
		return fmt.Errorf("origin list must be a JSON array of strings: %w", err)
	}
	*o = origins
	return nil
}

// ServerConfig is the transport-binding sub-configuration consumed by the
// listener, middleware, and auth layers. Composite configuration types embed
// it to gain the fields and the capability relation in one step.
type ServerConfig struct {
	Environment        Environment `yaml:"environment" json:"environment" toml:"environment" env:"ENVIRONMENT"`
	Host               string      `yaml:"host" json:"host" toml:"host" env:"HOST"`
	Port               int         `yaml:"port" json:"port" toml:"port" env:"PORT" conf:"min:1,max:65535"`
	RequestTimeoutSecs int         `yaml:"request_timeout_secs" json:"request_timeout_secs" toml:"request_timeout_secs" env:"REQUEST_TIMEOUT_SECS" conf:"min:1"`
	// CORSOrigins empty means cross-origin access is disabled.
	CORSOrigins OriginList `yaml:"cors_origins" json:"cors_origins" toml:"cors_origins" env:"CORS_ORIGINS"`
}

// DefaultServerConfig returns the stock transport defaults: 0.0.0.0:3000,
// 30 second request timeout, CORS disabled.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:               "0.0.0.0",
		Port:               3000,
		RequestTimeoutSecs: 30,
	}
}

// Addr returns the host:port bind address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RequestTimeout returns the request timeout as a duration.
func (c *ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}

// AsServerConfig declares the capability relation. Composite types provide
// it for free by embedding ServerConfig.
func (c *ServerConfig) AsServerConfig() *ServerConfig { return c }

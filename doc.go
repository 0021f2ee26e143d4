// Package ballast resolves service configuration once at startup: an ordered
// list of environment files and structured documents (TOML, YAML, JSON) is
// replayed into a single merged document plus an environment snapshot, then
// bound into a caller-defined struct.
//
// Quick Start:
//
//	type AppConfig struct {
//	    ballast.ServerConfig `yaml:",inline"`
//	    DatabaseURL string `yaml:"database_url" env:"DATABASE_URL" conf:"required"`
//	}
//
//	cfg, err := ballast.NewBuilder[AppConfig]().
//	    WithDotenv().
//	    WithFile("config.toml").
//	    WithDefaults(AppConfig{ServerConfig: ballast.DefaultServerConfig()}).
//	    Build(context.Background())
//
// Precedence, lowest to highest: values from declared environment files,
// structured files (a later file replaces an earlier one wholesale, never
// merged), and variables already set in the process environment when the
// build starts. Defaults fill whatever is still unset at the end.
//
// Resolution is synchronous and runs to completion before the service accepts
// traffic; the bound config is immutable afterwards and safe to share.
package ballast

package ballast

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment is the deployment mode a service runs in. It is deliberately
// two-valued: every value that is not recognized as production resolves to
// Development, and so does the complete absence of any mode variable.
type Environment uint8

const (
	Development Environment = iota
	Production
)

// environmentCandidates are checked in priority order when overlaying the
// mode from the snapshot; the first present variable wins.
var environmentCandidates = []string{"ENVIRONMENT", "APP_ENV", "GO_ENV"}

// ParseEnvironment interprets s case-insensitively. "production" and "prod"
// select Production; every other value, including empty, is Development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	}
	return Development
}

// String returns "production" or "development".
func (e Environment) String() string {
	if e == Production {
		return "production"
	}
	return "development"
}

// IsProduction reports whether the mode is Production.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether the mode is Development.
func (e Environment) IsDevelopment() bool { return e == Development }

// MarshalText implements encoding.TextMarshaler (used by json and toml).
func (e Environment) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by json, toml, and
// the environment overlay). It never fails.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = ParseEnvironment(string(text))
	return nil
}

// MarshalYAML implements yaml.Marshaler; yaml does not consult TextMarshaler.
func (e Environment) MarshalYAML() (any, error) {
	return e.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Environment) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*e = ParseEnvironment(s)
	return nil
}

// overlayEnvironment maps the candidate mode variables onto ENVIRONMENT so
// the overlay binds through a single recognized name.
func overlayEnvironment(vars map[string]string) {
	if _, ok := vars[environmentCandidates[0]]; ok {
		return
	}
	for _, name := range environmentCandidates[1:] {
		if v, ok := vars[name]; ok {
			vars[environmentCandidates[0]] = v
			return
		}
	}
}

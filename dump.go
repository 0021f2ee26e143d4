package ballast

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpConfig struct {
	asJSON bool
	indent string
}

// AsJSON outputs the configuration as indented JSON instead of YAML.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// DumpEffective writes the bound configuration in a re-loadable form: the
// output can be saved and fed back through the pipeline as a structured
// file, which is how the effective values a service actually started with
// get captured for a diagnostic.
func DumpEffective[T any](w io.Writer, cfg *T, opts ...DumpOption) error {
	if cfg == nil {
		return fmt.Errorf("ballast: config is nil")
	}

	config := dumpConfig{indent: "  "}
	for _, opt := range opts {
		opt(&config)
	}

	var data []byte
	var err error
	if config.asJSON {
		data, err = json.MarshalIndent(cfg, "", config.indent)
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("ballast: encode config: %w", err)
	}

	_, err = w.Write(data)
	return err
}

package ballast

import (
	"strings"
)

// tagConfig holds parsed directives from a struct field's `conf` tag.
type tagConfig struct {
	min      string   // Minimum constraint (min:N); string length for strings
	max      string   // Maximum constraint (max:M)
	oneof    []string // Allowed values (oneof:a,b,c)
	required bool     // Field is required (required or required:true)
}

// parseTag parses a `conf` struct tag into a structured tagConfig.
// Tag format: "directive1:value1,directive2:value2,..."
// Boolean directives can omit `:true` (e.g., "required" == "required:true")
func parseTag(tag string) tagConfig {
	cfg := tagConfig{}

	if tag == "" {
		return cfg
	}

	for _, directive := range splitDirectives(tag) {
		directive = strings.TrimSpace(directive)
		if directive == "" {
			continue
		}

		parts := strings.SplitN(directive, ":", 2)
		name := strings.TrimSpace(parts[0])
		var value string
		if len(parts) > 1 {
			value = parts[1]
		}

		switch name {
		case "min":
			cfg.min = value
		case "max":
			cfg.max = value
		case "oneof":
			if value != "" {
				cfg.oneof = strings.Split(value, ",")
				for i := range cfg.oneof {
					cfg.oneof[i] = strings.TrimSpace(cfg.oneof[i])
				}
			}
		case "required":
			cfg.required = value == "" || value == "true"
		}
	}

	return cfg
}

// splitDirectives splits a tag string into individual directives, handling
// the special case where oneof values contain commas.
func splitDirectives(tag string) []string {
	var directives []string
	var current strings.Builder
	inOneof := false

	for i := 0; i < len(tag); i++ {
		ch := tag[i]

		if !inOneof && strings.HasPrefix(tag[i:], "oneof:") {
			inOneof = true
			current.WriteString("oneof:")
			i += 5
			continue
		}

		if ch != ',' {
			current.WriteByte(ch)
			continue
		}

		if inOneof && !startsWithDirective(tag[i+1:]) {
			// Comma inside the oneof value list.
			current.WriteByte(ch)
			continue
		}

		inOneof = false
		directives = append(directives, current.String())
		current.Reset()
	}

	if current.Len() > 0 {
		directives = append(directives, current.String())
	}

	return directives
}

// startsWithDirective checks if a string starts with a known directive name.
func startsWithDirective(s string) bool {
	s = strings.TrimSpace(s)
	for _, d := range []string{"min:", "max:", "oneof:", "required"} {
		if strings.HasPrefix(s, d) {
			return true
		}
	}
	return false
}

package ballast

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for binding and validation failures.
const (
	ErrCodeRequired     = "required"
	ErrCodeMin          = "min"
	ErrCodeMax          = "max"
	ErrCodeOneOf        = "oneof"
	ErrCodeTypeMismatch = "type_mismatch"
	ErrCodeInvalidValue = "invalid_value"
)

// ErrBuilderConsumed is returned when a builder is executed a second time.
// Sources are replayed exactly once; re-running them could observe different
// file or environment state and silently diverge from the first result.
var ErrBuilderConsumed = errors.New("ballast: builder has already been built")

// UnsupportedFormatError reports a structured file declared with an
// unrecognized extension. It is detected at declaration time, before any
// file is opened.
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("ballast: unsupported config format: %s (supported: .env, .toml, .yaml, .yml, .json)", e.Path)
}

// SourceNotFoundError reports an explicitly declared structured file that
// does not exist. Environment files, by contrast, are optional and skipped
// when absent.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("ballast: config file not found: %s", e.Path)
}

// ParseError reports malformed content in a declared source. It carries the
// source identity and the underlying cause.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ballast: parse %s file %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CapabilityError reports a capability relation that was never declared for
// the requesting type. This is a caller-authoring mistake, not a resolution
// failure: projection cannot fail once the relation exists.
type CapabilityError struct {
	Target     string
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("ballast: type %s does not provide capability %s", e.Target, e.Capability)
}

// ValidationError aggregates field-level binding and validation failures.
type ValidationError struct {
	FieldErrors []FieldError
}

// Error formats validation errors as a multi-line message.
func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "ballast: config validation failed: no errors"
	}

	var b strings.Builder
	if len(e.FieldErrors) == 1 {
		b.WriteString("ballast: config validation failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "ballast: config validation failed: %d errors\n", len(e.FieldErrors))
	}

	for _, fe := range e.FieldErrors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", fe.FieldPath, fe.Code, fe.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// FieldError represents a single field binding or validation failure.
type FieldError struct {
	FieldPath string // Dot notation (e.g., "Server.Port")
	Code      string // Error code (e.g., "required", "type_mismatch")
	Message   string // Human-readable description
}

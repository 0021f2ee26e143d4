package ballast

import (
	"errors"
	"strings"
	"testing"
)

// TestValidationErrorFormat verifies the multi-line aggregate message.
func TestValidationErrorFormat(t *testing.T) {
	err := &ValidationError{FieldErrors: []FieldError{
		{FieldPath: "Port", Code: ErrCodeMax, Message: "value 70000 exceeds maximum 65535"},
		{FieldPath: "Token", Code: ErrCodeRequired, Message: "field is required but not provided"},
	}}

	msg := err.Error()
	if !strings.Contains(msg, "2 errors") {
		t.Errorf("message should count errors: %s", msg)
	}
	if !strings.Contains(msg, "Port: max") || !strings.Contains(msg, "Token: required") {
		t.Errorf("message should list each field error: %s", msg)
	}

	single := &ValidationError{FieldErrors: []FieldError{
		{FieldPath: "Host", Code: ErrCodeRequired, Message: "field is required but not provided"},
	}}
	if !strings.Contains(single.Error(), "1 error\n") {
		t.Errorf("singular form expected: %s", single.Error())
	}
}

// TestParseErrorUnwrap verifies the cause is reachable through errors.Is.
func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ParseError{Path: "config.toml", Format: FormatTOML, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ParseError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "config.toml") || !strings.Contains(err.Error(), "toml") {
		t.Errorf("message should carry source identity: %s", err.Error())
	}
}

// TestErrorMessages spot-checks the remaining error texts.
func TestErrorMessages(t *testing.T) {
	if msg := (&UnsupportedFormatError{Path: "c.txt"}).Error(); !strings.Contains(msg, "c.txt") {
		t.Errorf("unexpected message: %s", msg)
	}
	if msg := (&SourceNotFoundError{Path: "c.toml"}).Error(); !strings.Contains(msg, "c.toml") {
		t.Errorf("unexpected message: %s", msg)
	}
	if msg := (&CapabilityError{Target: "*main.AppConfig", Capability: "ballast.ServerConfig"}).Error(); !strings.Contains(msg, "ballast.ServerConfig") {
		t.Errorf("unexpected message: %s", msg)
	}
}

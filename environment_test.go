package ballast

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestParseEnvironment verifies case-insensitive mode parsing with the
// development fallback.
func TestParseEnvironment(t *testing.T) {
	cases := []struct {
		input string
		want  Environment
	}{
		{"production", Production},
		{"prod", Production},
		{"PRODUCTION", Production},
		{"Prod", Production},
		{"  production  ", Production},
		{"development", Development},
		{"dev", Development},
		{"staging", Development},
		{"garbage", Development},
		{"", Development},
	}

	for _, tc := range cases {
		if got := ParseEnvironment(tc.input); got != tc.want {
			t.Errorf("ParseEnvironment(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

// TestEnvironmentPredicates verifies the mode predicates and zero value.
func TestEnvironmentPredicates(t *testing.T) {
	var zero Environment
	if !zero.IsDevelopment() {
		t.Error("zero value should be development")
	}
	if Production.IsDevelopment() {
		t.Error("production should not report as development")
	}
	if !Production.IsProduction() {
		t.Error("production should report as production")
	}
	if Development.String() != "development" || Production.String() != "production" {
		t.Errorf("unexpected String values: %s, %s", Development, Production)
	}
}

// TestEnvironmentTextRoundTrip verifies the text codec used by json and toml.
func TestEnvironmentTextRoundTrip(t *testing.T) {
	out, err := json.Marshal(Production)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"production"` {
		t.Errorf("marshal = %s, want \"production\"", out)
	}

	var e Environment
	if err := json.Unmarshal([]byte(`"PROD"`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e != Production {
		t.Errorf("unmarshal = %s, want production", e)
	}

	// Parsing never fails, unknown values degrade to development.
	if err := e.UnmarshalText([]byte("whatever")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if e != Development {
		t.Errorf("got %s, want development", e)
	}
}

// TestEnvironmentYAMLRoundTrip verifies the yaml codec.
func TestEnvironmentYAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(Production)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "production\n" {
		t.Errorf("marshal = %q, want production", out)
	}

	var e Environment
	if err := yaml.Unmarshal([]byte("prod"), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e != Production {
		t.Errorf("unmarshal = %s, want production", e)
	}
}

// TestOverlayEnvironment verifies the candidate variable chain.
func TestOverlayEnvironment(t *testing.T) {
	cases := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"explicit", map[string]string{"ENVIRONMENT": "production"}, "production"},
		{"app env fallback", map[string]string{"APP_ENV": "production"}, "production"},
		{"go env fallback", map[string]string{"GO_ENV": "prod"}, "prod"},
		{"priority over app env", map[string]string{"ENVIRONMENT": "development", "APP_ENV": "production"}, "development"},
		{"app env over go env", map[string]string{"APP_ENV": "staging", "GO_ENV": "production"}, "staging"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			overlayEnvironment(tc.vars)
			if got := tc.vars["ENVIRONMENT"]; got != tc.want {
				t.Errorf("ENVIRONMENT = %q, want %q", got, tc.want)
			}
		})
	}

	empty := map[string]string{}
	overlayEnvironment(empty)
	if _, ok := empty["ENVIRONMENT"]; ok {
		t.Error("no candidate present, ENVIRONMENT should stay unset")
	}
}

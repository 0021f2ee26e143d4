package ballast

import (
	"reflect"
	"testing"
)

// TestParseTag verifies directive parsing, including boolean shorthand.
func TestParseTag(t *testing.T) {
	cases := []struct {
		tag  string
		want tagConfig
	}{
		{"", tagConfig{}},
		{"required", tagConfig{required: true}},
		{"required:true", tagConfig{required: true}},
		{"required:false", tagConfig{}},
		{"min:1", tagConfig{min: "1"}},
		{"min:1,max:65535", tagConfig{min: "1", max: "65535"}},
		{"required,min:8", tagConfig{required: true, min: "8"}},
		{" min:1 , max:10 ", tagConfig{min: "1", max: "10"}},
	}

	for _, tc := range cases {
		if got := parseTag(tc.tag); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseTag(%q) = %+v, want %+v", tc.tag, got, tc.want)
		}
	}
}

// TestParseTag_OneofCommas verifies commas inside oneof values are not
// treated as directive separators.
func TestParseTag_OneofCommas(t *testing.T) {
	cfg := parseTag("oneof:debug,info,warn,error")
	want := []string{"debug", "info", "warn", "error"}
	if !reflect.DeepEqual(cfg.oneof, want) {
		t.Errorf("oneof = %v, want %v", cfg.oneof, want)
	}

	cfg = parseTag("required,oneof:a,b,min:2")
	if !cfg.required {
		t.Error("required should be set")
	}
	if !reflect.DeepEqual(cfg.oneof, []string{"a", "b"}) {
		t.Errorf("oneof = %v, want [a b]", cfg.oneof)
	}
	if cfg.min != "2" {
		t.Errorf("min = %q, want 2", cfg.min)
	}
}

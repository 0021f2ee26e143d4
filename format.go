package ballast

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies how a declared configuration file is parsed.
type Format uint8

const (
	FormatUnknown Format = iota
	// FormatDotenv is a line-oriented KEY=VALUE environment file.
	FormatDotenv
	FormatTOML
	FormatYAML
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatDotenv:
		return "dotenv"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath detects the file format from the path's extension, without
// opening the file. Paths whose base name starts with ".env" (".env.local")
// or is exactly "env" count as dotenv files by convention.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".env":
		return FormatDotenv
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}

	base := filepath.Base(path)
	if strings.HasPrefix(base, ".env") || base == "env" {
		return FormatDotenv
	}
	return FormatUnknown
}

// decodeDocument parses the raw content of one structured file into a
// Document.
func decodeDocument(format Format, data []byte) (Document, error) {
	var raw map[string]any
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("format %s is not a structured document format", format)
	}
	return DocumentFromAny(raw)
}

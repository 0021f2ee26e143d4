// Package envfile reads line-oriented KEY=VALUE environment files.
package envfile

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Read parses the environment file at path into key/value pairs. Lines
// starting with '#' and blank lines are ignored; a key repeated within one
// file keeps its last value.
func Read(path string) (map[string]string, error) {
	return godotenv.Read(path)
}

// IsNotExist reports whether err means the file was absent, which callers
// treat as "nothing to apply" rather than a failure.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

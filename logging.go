package ballast

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LogFormat selects the log output encoding.
type LogFormat uint8

const (
	// LogFormatText is human-readable console output (default).
	LogFormatText LogFormat = iota
	// LogFormatJSON is structured JSON output.
	LogFormatJSON
)

// ParseLogFormat interprets s case-insensitively: "json" selects JSON,
// anything else text.
func ParseLogFormat(s string) LogFormat {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return LogFormatJSON
	}
	return LogFormatText
}

// LogFormatFromEnv reads LOG_FORMAT from the process environment, defaulting
// to text when unset.
func LogFormatFromEnv() LogFormat {
	return ParseLogFormat(os.Getenv("LOG_FORMAT"))
}

// NewLogger builds a zerolog logger writing to stderr with the given format
// and level. Unparseable levels fall back to info.
func NewLogger(format LogFormat, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	switch format {
	case LogFormatJSON:
		logger = zerolog.New(os.Stderr)
	default:
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return logger.Level(lvl).With().Timestamp().Logger()
}

// loggerFromSnapshot wires NewLogger from the LOG_FORMAT and LOG_LEVEL
// variables in the merged snapshot.
func loggerFromSnapshot(s *Snapshot) zerolog.Logger {
	format := LogFormatText
	if v, ok := s.Lookup("LOG_FORMAT"); ok {
		format = ParseLogFormat(v)
	}
	level := "info"
	if v, ok := s.Lookup("LOG_LEVEL"); ok {
		level = v
	}
	return NewLogger(format, level)
}

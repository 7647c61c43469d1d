// Package logging builds zerolog loggers and carries them through contexts.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.WarnLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a logger based on environment variables
// DUSK_LOG_LEVEL: trace, debug, info, warn, error (default: warn)
// DUSK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DUSK_LOG_LEVEL"), os.Getenv("DUSK_LOG_FORMAT"))
}

// NewFromConfigValues creates a logger from textual level and format values,
// as found in the config file. Empty values keep the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	if level != "" {
		cfg.Level = ParseLevel(level)
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	case "text":
		cfg.Format = "console"
	}
	return New(cfg)
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

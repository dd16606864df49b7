// Package logging builds the zerolog loggers used by the tl command.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// New returns a logger that writes JSON to the specified file.
// If file is empty, logs are written to stderr so command output on stdout
// stays clean.
//
// The level parameter can be one of: trace, debug, info, warn, error, fatal,
// disabled. An empty level means DefaultLevel.
func New(level string, file string) (zerolog.Logger, func(), error) {
	return newLogger(level, file, os.Stderr)
}

func newLogger(level string, file string, fallback io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level: %w", err)
	}

	writer := fallback
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		osFile, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = osFile.Close() }
		writer = osFile
	}

	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}

// Component returns a child logger tagged with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("cmp", name).Logger()
}

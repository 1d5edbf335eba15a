// Package logging builds the zerolog loggers used across the game.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w.
func New(w io.Writer, debug bool) zerolog.Logger {
	return zerolog.New(w).Level(level(debug)).With().Timestamp().Logger()
}

// Console returns a human readable logger on stderr for the desktop binary.
func Console(debug bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level(debug)).With().Timestamp().Logger()
}

// Nop discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Component tags a logger with the subsystem name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

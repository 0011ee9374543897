// Package logging builds the application slog.Logger from configuration.
// Console output goes through tint for readable development logs; JSON is
// available for structured collection.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// New creates a logger writing to stderr in the given format and level.
// Unknown values fall back to console at info.
func New(level, format string) *slog.Logger {
	parsed := parseLevel(level)

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parsed})
	default:
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      parsed,
			TimeFormat: time.TimeOnly,
		})
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

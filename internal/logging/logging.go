// Package logging sets up the panel's diagnostic logger. Diagnostics go to a
// rotating file, never to the terminal the TUI owns.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel converts a level string to slog.Level. Unrecognized strings
// fall back to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to a rotating file at path. The returned
// closer must be closed on shutdown to flush pending writes.
func New(path string, level slog.Level) (*slog.Logger, io.Closer) {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 2,
		MaxAge:     14,
	}
	handler := slog.NewTextHandler(lj, &slog.HandlerOptions{Level: level})
	return slog.New(handler), lj
}

// Discard returns a logger that drops everything, for tests and one-shot
// commands that should not touch the log file.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

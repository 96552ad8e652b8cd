package logging

import (
	"io"
	"log/slog"
)

// Verbose reports whether debug logging is enabled.
// Set by Setup and read by commands that gate expensive debug output.
var Verbose bool

var logger = slog.Default()

// Setup configures the package logger.
//
// verbose enables debug-level records, json switches the handler to JSON
// output, and w is the destination writer (os.Stderr in production,
// a buffer in tests).
func Setup(verbose, json bool, w io.Writer) {
	Verbose = verbose

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(handler)
}

// Debug logs a debug-level record. Suppressed unless Setup was called with
// verbose=true.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Info logs an info-level record.
func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

// Warn logs a warning-level record.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error logs an error-level record.
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

// With returns a logger with the given attributes attached to every record.
func With(args ...any) *slog.Logger {
	return logger.With(args...)
}

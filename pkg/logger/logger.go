// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the CALC_DEBUG environment variable:
//   export CALC_DEBUG=1
//
// By default, debug logging is disabled to reduce noise in normal operation.
// Commands that take explicit logging flags call Configure instead.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// Logger is the global logger instance
	Logger *slog.Logger
)

func init() {
	logLevel := slog.LevelInfo
	if debugEnabled(os.Getenv("CALC_DEBUG")) {
		logLevel = slog.LevelDebug
	}

	// Logs go to stderr; stdout belongs to the MCP stdio transport
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	setLogger(slog.New(handler))
}

func debugEnabled(value string) bool {
	return value != "" && strings.ToLower(value) != "false" && value != "0"
}

func setLogger(l *slog.Logger) {
	Logger = l
	slog.SetDefault(l)
}

// ParseLevel converts debug, info, warn or error (any case) to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}

// New builds a logger writing to w with the given level and format.
// Format is "text" or "json", case-insensitive.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text", "console":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q, must be 'text' or 'json'", format)
	}

	return slog.New(handler), nil
}

// Configure replaces the global logger with one writing to stderr.
func Configure(level, format string) error {
	l, err := New(os.Stderr, level, format)
	if err != nil {
		return err
	}
	setLogger(l)
	return nil
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

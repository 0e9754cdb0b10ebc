// Package applog provides general-purpose application logging.
//
// Logs are written to ~/.nibble/logs/nibble.log. stdout and stderr carry
// the widget and the script-facing output, so nothing is ever logged there.
// Until Init is called every call is a no-op.
package applog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	logFile *os.File
)

// ParseLevel maps a config level name to a slog level. "off" disables logging.
func ParseLevel(name string) (level slog.Level, enabled bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return slog.LevelInfo, true, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	case "off", "none":
		return slog.LevelInfo, false, nil
	}
	return slog.LevelInfo, false, fmt.Errorf("unknown log level %q", name)
}

// Init opens path for appending and routes all logging there
func Init(path, level string) error {
	lvl, enabled, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if !enabled || path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return nil
}

// SetOutput routes logging to w; used by tests
func SetOutput(w io.Writer, level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Logger returns the current logger
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs a debug message with key/value attributes.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs a general info message.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, err error, args ...any) {
	Logger().Error(msg, append([]any{"err", err}, args...)...)
}

// Event logs a structured event with a category.
func Event(category, msg string, args ...any) {
	Logger().Info(msg, append([]any{"category", category}, args...)...)
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

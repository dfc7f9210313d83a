// Package logger owns the process-wide structured logger. The TUI owns the
// terminal, so logs always go to a file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is used when the config does not name a log file
const DefaultLogPath = "couchnav.log"

var (
	mu       sync.Mutex
	levelVar = new(slog.LevelVar)
	current  = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}))
	logFile  *os.File
)

// Init opens path for appending and routes all logging there.
// Calling Init again switches to the new file.
func Init(path string) error {
	if path == "" {
		path = DefaultLogPath
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	current = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	current.Info("logger initialized", "path", path)
	return nil
}

// SetDebug switches between debug and info level
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Get returns the active logger. Before Init it discards everything.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// Close closes the log file and falls back to discarding
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	current = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}))
}

// Package logger provides process-wide structured logging for Snipsurf.
// Warnings (malformed metadata, unreadable files) are always written;
// verbose mode, enabled via the --verbose flag, adds debug and info
// messages that trace scans and lookups.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	asJSON  bool
	base    = newLogger(os.Stderr, false, false)
)

func newLogger(w io.Writer, verbose, json bool) *charmlog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	l := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: verbose,
		TimeFormat:      "15:04:05",
	})
	if json {
		l.SetFormatter(charmlog.JSONFormatter)
	}
	return l
}

func rebuild() {
	base = newLogger(output, verbose, asJSON)
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// SetJSON switches between text and JSON formatted lines.
func SetJSON(v bool) {
	mu.Lock()
	defer mu.Unlock()
	asJSON = v
	rebuild()
}

// Section prints a section header in verbose mode, separating phases
// such as a reload from the lines that follow.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Debug logs a message with key/value pairs if verbose mode is enabled.
func Debug(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Debug(msg, keyvals...)
}

// Info logs an informational message if verbose mode is enabled.
func Info(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Info(msg, keyvals...)
}

// Warn logs a recoverable problem. Always written.
func Warn(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Warn(msg, keyvals...)
}

// Error logs a failure. Always written.
func Error(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	base.Error(msg, keyvals...)
}

// Package logger provides the process-wide logger for Bakehouse.
// Records are structured (log/slog) and written to stderr by default.
// When verbose mode is enabled via the --verbose flag, debug records
// are emitted regardless of the configured level.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Output formats understood by SetFormat.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

var (
	mu        sync.RWMutex
	verbose   bool
	baseLevel           = slog.LevelInfo
	level               = new(slog.LevelVar)
	output    io.Writer = os.Stderr
	format              = FormatAuto
	current   *slog.Logger
)

func init() {
	level.Set(baseLevel)
	rebuild()
}

// rebuild recreates the handler for the current output and format (caller must hold lock).
func rebuild() {
	opts := &slog.HandlerOptions{Level: level}
	if resolveFormat(format, output) == FormatJSON {
		current = slog.New(slog.NewJSONHandler(output, opts))
		return
	}
	current = slog.New(slog.NewTextHandler(output, opts))
}

// resolveFormat turns FormatAuto into text for terminals and JSON for everything else.
func resolveFormat(f string, w io.Writer) string {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return FormatText
	}
	return FormatJSON
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(baseLevel)
	}
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetLevel sets the minimum level by name ("debug", "info", "warn", "error").
// Loggers returned earlier by Logger pick up the change.
// Verbose mode keeps debug enabled until it is switched off.
func SetLevel(name string) {
	mu.Lock()
	defer mu.Unlock()
	baseLevel = ParseLevel(name)
	if !verbose {
		level.Set(baseLevel)
	}
}

// ParseLevel parses a level name. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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

// SetFormat selects text, json or auto output. Unknown formats map to auto.
func SetFormat(f string) {
	mu.Lock()
	defer mu.Unlock()
	switch f {
	case FormatText, FormatJSON:
		format = f
	default:
		format = FormatAuto
	}
	rebuild()
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// Logger returns the current structured logger for injection into components.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Debug logs a message with key/value attributes at debug level.
func Debug(msg string, args ...any) {
	log(slog.LevelDebug, msg, args...)
}

// Info logs a message with key/value attributes at info level.
func Info(msg string, args ...any) {
	log(slog.LevelInfo, msg, args...)
}

// Warn logs a message with key/value attributes at warn level.
func Warn(msg string, args ...any) {
	log(slog.LevelWarn, msg, args...)
}

// Error logs a message with key/value attributes at error level.
func Error(msg string, args ...any) {
	log(slog.LevelError, msg, args...)
}

func log(l slog.Level, msg string, args ...any) {
	Logger().Log(context.Background(), l, msg, args...)
}

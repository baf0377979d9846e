package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// LogFormat selects how log records are rendered.
type LogFormat string

// Available log formats.
const (
	// LogFormatAuto renders text on a terminal and JSON otherwise.
	LogFormatAuto LogFormat = "auto"

	// LogFormatText renders human-readable key=value records.
	LogFormatText LogFormat = "text"

	// LogFormatJSON renders one JSON object per record.
	LogFormatJSON LogFormat = "json"
)

// IsValid returns true if the log format is recognised.
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f LogFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f LogFormat) Description() string {
	switch f {
	case LogFormatAuto:
		return "Auto (text on a terminal, JSON otherwise)"
	case LogFormatText:
		return "Text"
	case LogFormatJSON:
		return "JSON"
	default:
		return unknownDescription
	}
}

// LogLevel is the minimum severity that gets logged.
type LogLevel string

// Available log levels.
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// IsValid returns true if the log level is recognised.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l LogLevel) String() string {
	return string(l)
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	// Address is the host:port the HTTP API listens on.
	Address string

	// ShutdownTimeout bounds how long in-flight requests may run after shutdown starts.
	ShutdownTimeout time.Duration
}

// StorageSettings configures the relational store.
type StorageSettings struct {
	// DataDir holds the SQLite database file. Empty means ~/.bakehouse/data.
	DataDir string
}

// LogSettings configures the process logger.
type LogSettings struct {
	Level  LogLevel
	Format LogFormat
}

// RateLimitSettings configures request throttling on the HTTP API.
type RateLimitSettings struct {
	// RequestsPerSecond is the sustained rate. Zero disables throttling.
	RequestsPerSecond float64

	// Burst is the maximum number of requests allowed at once.
	Burst int
}

// Enabled reports whether throttling is switched on.
func (r RateLimitSettings) Enabled() bool {
	return r.RequestsPerSecond > 0
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Server    ServerSettings
	Storage   StorageSettings
	Log       LogSettings
	RateLimit RateLimitSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Address:         "127.0.0.1:5000",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogSettings{
			Level:  LogLevelInfo,
			Format: LogFormatAuto,
		},
		RateLimit: RateLimitSettings{
			Burst: 20,
		},
	}
}

// Validate checks the settings for values the service cannot start with.
func (s *AppSettings) Validate() error {
	if s.Server.Address == "" {
		return fmt.Errorf("%w: server address is required", ErrInvalidInput)
	}
	if s.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: shutdown timeout must not be negative", ErrInvalidInput)
	}
	if !s.Log.Level.IsValid() {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidInput, s.Log.Level)
	}
	if !s.Log.Format.IsValid() {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidInput, s.Log.Format)
	}
	if s.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests per second must not be negative", ErrInvalidInput)
	}
	if s.RateLimit.Enabled() && s.RateLimit.Burst < 1 {
		return fmt.Errorf("%w: burst must be at least 1 when rate limiting is enabled", ErrInvalidInput)
	}
	return nil
}

package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driven"
	"github.com/custodia-labs/bakehouse/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyServerAddress   = "server.address"
	keyShutdownTimeout = "server.shutdown_timeout"
	keyDataDir         = "storage.data_dir"
	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
	keyRateLimitRPS    = "rate_limit.requests_per_second"
	keyRateLimitBurst  = "rate_limit.burst"
)

// settingKeys lists the keys accepted by Set, in display order.
var settingKeys = []string{
	keyServerAddress,
	keyShutdownTimeout,
	keyDataDir,
	keyLogLevel,
	keyLogFormat,
	keyRateLimitRPS,
	keyRateLimitBurst,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Server: domain.ServerSettings{
			Address:         s.getString(keyServerAddress, defaults.Server.Address),
			ShutdownTimeout: s.getSeconds(keyShutdownTimeout, defaults.Server.ShutdownTimeout),
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyDataDir), // No default - empty selects the home directory
		},
		Log: domain.LogSettings{
			Level:  s.getLogLevel(defaults.Log.Level),
			Format: s.getLogFormat(defaults.Log.Format),
		},
		RateLimit: domain.RateLimitSettings{
			RequestsPerSecond: s.configStore.GetFloat(keyRateLimitRPS),
			Burst:             s.getInt(keyRateLimitBurst, defaults.RateLimit.Burst),
		},
	}

	return settings, nil
}

// Set parses value for key and persists it.
// The resulting settings must pass validation or nothing is stored.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	var stored any
	switch key {
	case keyServerAddress:
		settings.Server.Address = value
		stored = value
	case keyShutdownTimeout:
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number of seconds", domain.ErrInvalidInput, key)
		}
		settings.Server.ShutdownTimeout = time.Duration(secs) * time.Second
		stored = int64(secs)
	case keyDataDir:
		settings.Storage.DataDir = value
		stored = value
	case keyLogLevel:
		settings.Log.Level = domain.LogLevel(value)
		stored = value
	case keyLogFormat:
		settings.Log.Format = domain.LogFormat(value)
		stored = value
	case keyRateLimitRPS:
		rps, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		settings.RateLimit.RequestsPerSecond = rps
		stored = rps
	case keyRateLimitBurst:
		burst, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a whole number", domain.ErrInvalidInput, key)
		}
		settings.RateLimit.Burst = burst
		stored = int64(burst)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Keys returns the setting keys understood by Set.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return settings.Validate()
}

// Reload re-reads the config store so Get reflects external edits.
func (s *SettingsService) Reload() error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := s.configStore.Load(); err != nil {
		return fmt.Errorf("reloading config: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return time.Duration(s.configStore.GetInt(key)) * time.Second
}

func (s *SettingsService) getLogLevel(defaultVal domain.LogLevel) domain.LogLevel {
	level := domain.LogLevel(s.configStore.GetString(keyLogLevel))
	if !level.IsValid() {
		return defaultVal
	}
	return level
}

func (s *SettingsService) getLogFormat(defaultVal domain.LogFormat) domain.LogFormat {
	format := domain.LogFormat(s.configStore.GetString(keyLogFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}

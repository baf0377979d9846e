package driving

import "github.com/custodia-labs/bakehouse/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults for unset keys.
	Get() (*domain.AppSettings, error)

	// Set parses and stores a single setting by key.
	Set(key, value string) error

	// Keys returns the setting keys understood by Set.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// Reload re-reads settings from the underlying store.
	Reload() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}

package driving

import "github.com/RachelGal/pharmacy-scraper/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings: the built-in defaults overlaid
	// with whatever the config store holds.
	Get() (domain.Settings, error)

	// Save persists settings to the config store.
	Save(settings domain.Settings) error

	// Validate checks that the current settings describe a runnable
	// setup (well-formed URL, thresholds in range, positive delays).
	Validate() error

	// Defaults returns the built-in default settings.
	Defaults() domain.Settings
}

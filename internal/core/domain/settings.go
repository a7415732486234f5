package domain

import "time"

// RegisterSettings holds browser and register behaviour configuration.
type RegisterSettings struct {
	// BaseURL is the register search page address.
	BaseURL string

	// Headless controls whether the browser runs without a window.
	// Turning it off is the easiest way to watch a search go wrong.
	Headless bool

	// RequestDelay is the politeness gap between register searches.
	RequestDelay time.Duration

	// SearchTimeout bounds a whole search, pagination included.
	SearchTimeout time.Duration
}

// MatcherSettings holds name-matching acceptance parameters.
type MatcherSettings struct {
	// Threshold is the minimum similarity score a candidate must reach
	// to be accepted, in (0, 1].
	Threshold float64

	// TieMargin is the score gap below which a runner-up makes the
	// match ambiguous rather than accepted.
	TieMargin float64
}

// CacheSettings holds search result cache configuration.
type CacheSettings struct {
	// Enabled controls whether runs consult the cache at all.
	Enabled bool

	// MaxAge is how long a cached search stays usable. Zero or
	// negative means cached results never expire.
	MaxAge time.Duration
}

// LogSettings holds run log configuration.
type LogSettings struct {
	// File is the path the run log is appended to. Empty disables the
	// file sink; console output is unaffected.
	File string
}

// Settings holds all application settings.
type Settings struct {
	// Register holds browser and register settings.
	Register RegisterSettings

	// Matcher holds name-matching settings.
	Matcher MatcherSettings

	// Cache holds result cache settings.
	Cache CacheSettings

	// Log holds run log settings.
	Log LogSettings
}

// DefaultSettings returns settings with sensible defaults. These are
// the values a run uses when no config file exists. The matcher values
// mirror the matcher service's own fallbacks.
func DefaultSettings() Settings {
	return Settings{
		Register: RegisterSettings{
			BaseURL:       "https://www.psi.ie/search-registers",
			Headless:      true,
			RequestDelay:  2 * time.Second,
			SearchTimeout: 2 * time.Minute,
		},
		Matcher: MatcherSettings{
			Threshold: 0.75,
			TieMargin: 0.05,
		},
		Cache: CacheSettings{
			Enabled: true,
			MaxAge:  7 * 24 * time.Hour,
		},
		Log: LogSettings{
			File: "scraper.log",
		},
	}
}

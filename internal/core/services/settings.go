package services

import (
	"fmt"
	"net/url"
	"time"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage. Durations are stored as strings in
// time.ParseDuration form ("2s", "168h") so the file stays editable.
const (
	keyRegisterURL      = "register.base_url"
	keyRegisterHeadless = "register.headless"
	keyRegisterDelay    = "register.request_delay"
	keyRegisterTimeout  = "register.search_timeout"
	keyMatchThreshold   = "matcher.threshold"
	keyMatchTieMargin   = "matcher.tie_margin"
	keyCacheEnabled     = "cache.enabled"
	keyCacheMaxAge      = "cache.max_age"
	keyLogFile          = "log.file"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings: the built-in defaults overlaid with
// whatever the config store holds. Unparseable durations keep their
// defaults rather than failing the run.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		Register: domain.RegisterSettings{
			BaseURL:       s.getString(keyRegisterURL, defaults.Register.BaseURL),
			Headless:      s.getBool(keyRegisterHeadless, defaults.Register.Headless),
			RequestDelay:  s.getDuration(keyRegisterDelay, defaults.Register.RequestDelay),
			SearchTimeout: s.getDuration(keyRegisterTimeout, defaults.Register.SearchTimeout),
		},
		Matcher: domain.MatcherSettings{
			Threshold: s.getFloat(keyMatchThreshold, defaults.Matcher.Threshold),
			TieMargin: s.getFloat(keyMatchTieMargin, defaults.Matcher.TieMargin),
		},
		Cache: domain.CacheSettings{
			Enabled: s.getBool(keyCacheEnabled, defaults.Cache.Enabled),
			MaxAge:  s.getDuration(keyCacheMaxAge, defaults.Cache.MaxAge),
		},
		Log: domain.LogSettings{
			// An explicitly empty log.file disables the file sink, so
			// presence matters here, not just a non-empty value.
			File: s.getStringAllowEmpty(keyLogFile, defaults.Log.File),
		},
	}

	return settings, nil
}

// Save persists settings to the config store.
func (s *SettingsService) Save(settings domain.Settings) error {
	if err := s.configStore.Set(keyRegisterURL, settings.Register.BaseURL); err != nil {
		return fmt.Errorf("save register base_url: %w", err)
	}
	if err := s.configStore.Set(keyRegisterHeadless, settings.Register.Headless); err != nil {
		return fmt.Errorf("save register headless: %w", err)
	}
	if err := s.configStore.Set(keyRegisterDelay, settings.Register.RequestDelay.String()); err != nil {
		return fmt.Errorf("save register request_delay: %w", err)
	}
	if err := s.configStore.Set(keyRegisterTimeout, settings.Register.SearchTimeout.String()); err != nil {
		return fmt.Errorf("save register search_timeout: %w", err)
	}

	if err := s.configStore.Set(keyMatchThreshold, settings.Matcher.Threshold); err != nil {
		return fmt.Errorf("save matcher threshold: %w", err)
	}
	if err := s.configStore.Set(keyMatchTieMargin, settings.Matcher.TieMargin); err != nil {
		return fmt.Errorf("save matcher tie_margin: %w", err)
	}

	if err := s.configStore.Set(keyCacheEnabled, settings.Cache.Enabled); err != nil {
		return fmt.Errorf("save cache enabled: %w", err)
	}
	if err := s.configStore.Set(keyCacheMaxAge, settings.Cache.MaxAge.String()); err != nil {
		return fmt.Errorf("save cache max_age: %w", err)
	}

	if err := s.configStore.Set(keyLogFile, settings.Log.File); err != nil {
		return fmt.Errorf("save log file: %w", err)
	}

	return nil
}

// Validate checks that the current settings describe a runnable setup.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	u, err := url.Parse(settings.Register.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("register base_url %q is not an absolute URL", settings.Register.BaseURL)
	}

	if settings.Matcher.Threshold <= 0 || settings.Matcher.Threshold > 1 {
		return fmt.Errorf("matcher threshold %v outside (0, 1]", settings.Matcher.Threshold)
	}
	if settings.Matcher.TieMargin < 0 {
		return fmt.Errorf("matcher tie_margin %v is negative", settings.Matcher.TieMargin)
	}

	if settings.Register.RequestDelay < 0 {
		return fmt.Errorf("register request_delay %v is negative", settings.Register.RequestDelay)
	}
	if settings.Register.SearchTimeout < 0 {
		return fmt.Errorf("register search_timeout %v is negative", settings.Register.SearchTimeout)
	}

	return nil
}

// Defaults returns the built-in default settings.
func (s *SettingsService) Defaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStringAllowEmpty(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat64(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

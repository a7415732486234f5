package cli

import (
	"os"
	"strconv"
	"time"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// Environment variables layered between the config file and flags.
// main loads a .env file from the working directory before the command
// runs, so these can live there too.
const (
	envRegisterURL   = "PHARMACY_SCRAPER_REGISTER_URL"
	envHeadless      = "HEADLESS"
	envRequestDelay  = "PHARMACY_SCRAPER_REQUEST_DELAY"
	envSearchTimeout = "PHARMACY_SCRAPER_SEARCH_TIMEOUT"
	envThreshold     = "PHARMACY_SCRAPER_THRESHOLD"
	envTieMargin     = "PHARMACY_SCRAPER_TIE_MARGIN"
	envCacheMaxAge   = "PHARMACY_SCRAPER_CACHE_MAX_AGE"
	envNoCache       = "PHARMACY_SCRAPER_NO_CACHE"
	envLogFile       = "PHARMACY_SCRAPER_LOG_FILE"
)

// applyEnvOverrides layers environment variables over settings.
// Unparseable values are reported and skipped. Setting the log file
// variable to an empty string disables the run log.
func applyEnvOverrides(settings *domain.Settings) {
	if v := os.Getenv(envRegisterURL); v != "" {
		settings.Register.BaseURL = v
	}
	if b, ok := envBool(envHeadless); ok {
		settings.Register.Headless = b
	}
	if d, ok := envDuration(envRequestDelay); ok {
		settings.Register.RequestDelay = d
	}
	if d, ok := envDuration(envSearchTimeout); ok {
		settings.Register.SearchTimeout = d
	}
	if f, ok := envFloat(envThreshold); ok {
		settings.Matcher.Threshold = f
	}
	if f, ok := envFloat(envTieMargin); ok {
		settings.Matcher.TieMargin = f
	}
	if d, ok := envDuration(envCacheMaxAge); ok {
		settings.Cache.MaxAge = d
	}
	if b, ok := envBool(envNoCache); ok && b {
		settings.Cache.Enabled = false
	}
	if v, ok := os.LookupEnv(envLogFile); ok {
		settings.Log.File = v
	}
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warn("Ignoring %s=%q: %v", key, v, err)
		return false, false
	}
	return b, true
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warn("Ignoring %s=%q: %v", key, v, err)
		return 0, false
	}
	return d, true
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logger.Warn("Ignoring %s=%q: %v", key, v, err)
		return 0, false
	}
	return f, true
}

package psi

import "time"

const (
	// DefaultBaseURL is the public search page of the register.
	DefaultBaseURL = "https://www.psi.ie/search-registers"

	// DefaultUserAgent is the browser identity presented to the register.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

	// DefaultSearchTimeout bounds one whole search, pagination included.
	DefaultSearchTimeout = 2 * time.Minute

	// DefaultResultsWait bounds how long a results list may take to render.
	DefaultResultsWait = 10 * time.Second

	// DefaultPageSettle is the pause after submitting a search or turning
	// a page, giving the register's scripts time to swap the list content.
	DefaultPageSettle = 3 * time.Second

	// DefaultRequestDelay is the politeness interval between page loads.
	DefaultRequestDelay = 2 * time.Second
)

// Config holds the browser and timing settings for the register client.
type Config struct {
	// BaseURL is the register search page. Default: DefaultBaseURL.
	BaseURL string

	// Headless controls whether Chrome runs without a window.
	// DefaultConfig enables it; a visible browser helps debugging.
	Headless bool

	// UserAgent overrides the browser user agent string.
	UserAgent string

	// SearchTimeout bounds a single Search call.
	SearchTimeout time.Duration

	// ResultsWait bounds the wait for a results list on each page.
	ResultsWait time.Duration

	// PageSettle is the pause after navigation-triggering actions.
	PageSettle time.Duration

	// RequestDelay is the minimum spacing between page loads.
	RequestDelay time.Duration
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:       DefaultBaseURL,
		Headless:      true,
		UserAgent:     DefaultUserAgent,
		SearchTimeout: DefaultSearchTimeout,
		ResultsWait:   DefaultResultsWait,
		PageSettle:    DefaultPageSettle,
		RequestDelay:  DefaultRequestDelay,
	}
}

// withDefaults returns a copy of c with unset fields filled in.
// A nil receiver yields the full default config.
func (c *Config) withDefaults() *Config {
	if c == nil {
		return DefaultConfig()
	}
	out := *c
	if out.BaseURL == "" {
		out.BaseURL = DefaultBaseURL
	}
	if out.UserAgent == "" {
		out.UserAgent = DefaultUserAgent
	}
	if out.SearchTimeout <= 0 {
		out.SearchTimeout = DefaultSearchTimeout
	}
	if out.ResultsWait <= 0 {
		out.ResultsWait = DefaultResultsWait
	}
	if out.PageSettle <= 0 {
		out.PageSettle = DefaultPageSettle
	}
	if out.RequestDelay <= 0 {
		out.RequestDelay = DefaultRequestDelay
	}
	return &out
}

package psi

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.RegisterClient = (*Connector)(nil)

// maxResultPages caps pagination per search. The register lists a
// handful of pharmacies per page; a single trading name never comes
// close to this.
const maxResultPages = 50

// Connector searches the public pharmacy register through a headless
// Chrome session. One browser process is shared by all searches; each
// search runs in its own tab.
type Connector struct {
	cfg     *Config
	limiter *rate.Limiter

	allocCtx    context.Context
	allocCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// New creates a register connector. The browser process itself starts
// lazily on the first search. A nil cfg uses DefaultConfig.
func New(cfg *Config) *Connector {
	cfg = cfg.withDefaults()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(cfg.UserAgent),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Connector{
		cfg:         cfg,
		limiter:     rate.NewLimiter(rate.Every(cfg.RequestDelay), 1),
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}
}

// Validate checks that the register's search page is reachable and
// renders its search box.
func (c *Connector) Validate(ctx context.Context) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}
	if err := c.wait(ctx); err != nil {
		return err
	}

	tabCtx, cancel := chromedp.NewContext(c.allocCtx)
	defer cancel()
	tabCtx, cancel = context.WithTimeout(tabCtx, c.cfg.SearchTimeout)
	defer cancel()

	err := chromedp.Run(tabCtx,
		chromedp.Navigate(c.cfg.BaseURL),
		chromedp.WaitVisible(searchBoxSel, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRegisterUnavailable, err)
	}
	return nil
}

// Search queries the register for a trading name and returns every
// entry across all result pages, deduplicated by registration number.
// A query the register knows nothing about returns an empty slice.
func (c *Connector) Search(ctx context.Context, name string) ([]domain.RegisterEntry, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}

	query := cleanQuery(name)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search name", domain.ErrInvalidInput)
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	tabCtx, cancel := chromedp.NewContext(c.allocCtx)
	defer cancel()
	tabCtx, cancel = context.WithTimeout(tabCtx, c.cfg.SearchTimeout)
	defer cancel()

	if err := c.submitSearch(tabCtx, query); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRegisterUnavailable, err)
	}

	var entries []domain.RegisterEntry
	seen := make(map[string]bool)
	for page := 1; page <= maxResultPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		html, err := c.resultsPage(tabCtx)
		if err != nil {
			if page > 1 {
				// Keep what earlier pages yielded.
				logger.Warn("Lost result page %d for %q: %v", page, query, err)
				break
			}
			if errors.Is(err, context.DeadlineExceeded) {
				logger.Debug("No results for %q", query)
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %w", domain.ErrRegisterUnavailable, err)
		}

		pageEntries, err := parseResults(html)
		if err != nil {
			if page > 1 {
				break
			}
			return nil, err
		}
		for _, entry := range pageEntries {
			if entry.RegistrationNumber != "" {
				if seen[entry.RegistrationNumber] {
					continue
				}
				seen[entry.RegistrationNumber] = true
			}
			entries = append(entries, entry)
		}

		status, err := c.nextPage(tabCtx)
		if err != nil || status != nextClicked {
			break
		}
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
	}

	logger.Debug("Register returned %d entries for %q", len(entries), query)
	return entries, nil
}

// Close shuts the browser down. Further calls are no-ops.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.allocCancel()
	return nil
}

// ensureOpen reports whether the connector can still be used.
func (c *Connector) ensureOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return domain.ErrRegisterClosed
	}
	return nil
}

// wait blocks for the politeness interval between page loads.
func (c *Connector) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}
	return nil
}

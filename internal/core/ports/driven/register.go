package driven

import (
	"context"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
)

// RegisterClient searches the public pharmacy register.
// Backed by a headless browser session against the register website;
// session management, pagination and politeness delays are the
// implementation's business, the core only sees result lists.
type RegisterClient interface {
	// Validate checks the register search page is reachable and renders.
	// Called once before an enrichment run so setup failures abort early.
	Validate(ctx context.Context) error

	// Search submits name to the register and returns every result
	// entry across all result pages. An empty slice with a nil error
	// means the register answered with no results.
	Search(ctx context.Context, name string) ([]domain.RegisterEntry, error)

	// Close releases the browser session.
	Close() error
}

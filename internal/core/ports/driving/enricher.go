package driving

import (
	"context"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
)

// EnrichmentService runs the enrichment pipeline: search the register
// for each input name, match, normalise and merge into the dataset.
type EnrichmentService interface {
	// Enrich processes the input records in order against prior, which
	// may be nil when no previous dataset exists. It returns the merged
	// dataset and a summary of the run. Per-record failures degrade the
	// record to NOT_FOUND; only setup failures return an error.
	Enrich(ctx context.Context, inputs []domain.InputRecord, prior *domain.Dataset) (*domain.Dataset, domain.RunSummary, error)
}

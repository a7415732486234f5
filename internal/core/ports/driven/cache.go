package driven

import (
	"context"
	"time"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
)

// ResultCache stores register search results between runs so repeated
// enrichments do not hammer the register. Entries are keyed by the
// normalised query name.
type ResultCache interface {
	// Get returns the cached entries for key fetched within maxAge.
	// ok is false on a miss or when the entry is too old.
	Get(ctx context.Context, key string, maxAge time.Duration) (entries []domain.RegisterEntry, ok bool, err error)

	// Put stores the entries for key, replacing any previous value.
	// Empty result lists are cached too; "no results" is an answer.
	Put(ctx context.Context, key string, entries []domain.RegisterEntry) error

	// Clear removes all cached searches.
	Clear(ctx context.Context) error

	// Stats returns the number of cached searches and the time of the
	// oldest entry. The zero time means the cache is empty.
	Stats(ctx context.Context) (count int, oldest time.Time, err error)

	// Close releases the underlying store.
	Close() error
}

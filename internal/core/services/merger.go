package services

import (
	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// MergerService folds enriched records into the dataset without
// creating duplicates or losing previously matched data.
type MergerService struct {
	names driven.NameNormaliser
}

// NewMergerService creates a new merger.
func NewMergerService(names driven.NameNormaliser) *MergerService {
	return &MergerService{names: names}
}

// Merge applies rec to ds under the record's match key:
//
//   - key present and rec MATCHED: replace the stored record in place,
//     a fresh scrape supersedes stale data;
//   - key present and rec NOT_FOUND or AMBIGUOUS: keep the stored
//     record, a failed lookup never erases earlier contact details;
//   - key absent: append rec whatever its status, so the output shows
//     every input name with its outcome.
func (s *MergerService) Merge(ds *domain.Dataset, rec domain.EnrichedRecord) {
	key := s.names.Key(rec.Name)
	if key == "" {
		logger.Warn("Dropping record with unkeyable name %q", rec.Name)
		return
	}

	if existing, ok := ds.Lookup(key); ok {
		if rec.Status != domain.StatusMatched {
			logger.Debug("Keeping existing record for %q, new status %s", existing.Name, rec.Status)
			return
		}
		logger.Debug("Replacing record for %q with fresh match", rec.Name)
	}
	ds.Put(key, rec)
}

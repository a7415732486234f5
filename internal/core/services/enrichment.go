package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driving"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// Ensure EnrichmentService implements the interface.
var _ driving.EnrichmentService = (*EnrichmentService)(nil)

// EnrichmentService orchestrates an enrichment run: search the register
// for each input name, pick the matching entry, normalise its phone
// number and merge the outcome into the dataset.
type EnrichmentService struct {
	register driven.RegisterClient
	phones   driven.PhoneNormaliser
	names    driven.NameNormaliser
	matcher  *MatcherService
	merger   *MergerService
	runID    string

	// Optional collaborators.
	cache    driven.ResultCache
	cacheTTL time.Duration
	reporter driven.ProgressReporter
}

// NewEnrichmentService creates a new enrichment service. runID labels
// this run in logs and the summary; the caller mints it.
func NewEnrichmentService(
	register driven.RegisterClient,
	phones driven.PhoneNormaliser,
	names driven.NameNormaliser,
	matcher *MatcherService,
	merger *MergerService,
	runID string,
) *EnrichmentService {
	return &EnrichmentService{
		register: register,
		phones:   phones,
		names:    names,
		matcher:  matcher,
		merger:   merger,
		runID:    runID,
	}
}

// SetResultCache attaches a search result cache. Entries older than
// maxAge are ignored and refreshed from the register.
func (s *EnrichmentService) SetResultCache(cache driven.ResultCache, maxAge time.Duration) {
	s.cache = cache
	s.cacheTTL = maxAge
}

// SetProgressReporter attaches a progress reporter for the run.
func (s *EnrichmentService) SetProgressReporter(reporter driven.ProgressReporter) {
	s.reporter = reporter
}

// Enrich processes the input records in order against prior, which may
// be nil when no previous dataset exists. Per-record failures degrade
// the record to NOT_FOUND and the run continues; only setup failures
// and context cancellation abort.
func (s *EnrichmentService) Enrich(
	ctx context.Context, inputs []domain.InputRecord, prior *domain.Dataset,
) (*domain.Dataset, domain.RunSummary, error) {
	started := time.Now()
	summary := domain.RunSummary{RunID: s.runID, Total: len(inputs)}

	// 1. Check the register is reachable before touching anything.
	if err := s.register.Validate(ctx); err != nil {
		return nil, summary, fmt.Errorf("validate register: %w", err)
	}

	// 2. Start from the prior dataset when one was supplied.
	ds := domain.NewDataset()
	if prior != nil {
		ds = prior.Clone()
	}

	logger.Section("Enrichment Run")
	logger.Info("Run %s: enriching %d records against %d existing", s.runID, len(inputs), ds.Len())

	if s.reporter != nil {
		s.reporter.Start(len(inputs))
	}

	// 3. Walk the input in order. Identical names are searched once;
	// results are memoised for the rest of the run.
	seen := make(map[string][]domain.RegisterEntry)
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, summary, fmt.Errorf("enrichment interrupted: %w", err)
		}

		rec := s.enrichOne(ctx, input, seen, &summary)
		s.merger.Merge(ds, rec)

		switch rec.Status {
		case domain.StatusMatched:
			summary.Matched++
		case domain.StatusAmbiguous:
			summary.Ambiguous++
		default:
			summary.NotFound++
		}
		if s.reporter != nil {
			s.reporter.Step(input.Name, rec.Status)
		}
	}

	summary.Duration = time.Since(started)
	logger.Info("Run %s complete: %d matched, %d not found, %d ambiguous, %d searches in %s",
		s.runID, summary.Matched, summary.NotFound, summary.Ambiguous,
		summary.Searches, summary.Duration.Round(time.Millisecond))

	if s.reporter != nil {
		s.reporter.Finish(summary)
	}
	return ds, summary, nil
}

// enrichOne resolves a single input record to an enriched record.
// Failures are logged and degrade the record to NOT_FOUND.
func (s *EnrichmentService) enrichOne(
	ctx context.Context, input domain.InputRecord,
	seen map[string][]domain.RegisterEntry, summary *domain.RunSummary,
) domain.EnrichedRecord {
	rec := domain.EnrichedRecord{Name: input.Name, Status: domain.StatusNotFound}

	key := s.names.Key(input.Name)
	if key == "" {
		logger.Warn("Skipping record with empty name: %v", domain.ErrInvalidInput)
		return rec
	}

	entries, err := s.lookup(ctx, key, input.Name, seen, summary)
	if err != nil {
		logger.Warn("Search failed for %q: %v", input.Name, err)
		return rec
	}

	match, err := s.matcher.Match(input.Name, entries)
	if err != nil {
		logger.Warn("Match failed for %q: %v", input.Name, err)
		return rec
	}

	rec.Status = match.Status
	switch match.Status {
	case domain.StatusMatched:
		rec.RegistrationNumber = match.Entry.RegistrationNumber
		rec.Address = match.Entry.Address
		rec.Website = match.Entry.Website
		rec.Superintendent = match.Entry.Superintendent
		rec.Supervising = match.Entry.Supervising
		if phone, err := s.phones.Normalise(match.Entry.Phone); err == nil {
			rec.Phone = phone
		} else if !errors.Is(err, domain.ErrInvalidPhone) {
			logger.Warn("Phone normalisation failed for %q: %v", input.Name, err)
		} else if match.Entry.Phone != "" {
			logger.Debug("Unusable phone %q for %q", match.Entry.Phone, input.Name)
		}
	case domain.StatusAmbiguous:
		logger.Warn("Ambiguous match for %q: %d candidates %v", input.Name, len(match.Candidates), match.Candidates)
	default:
		logger.Info("No match for %q (best score %.2f)", input.Name, match.Score)
	}
	return rec
}

// lookup fetches register entries for key, consulting the per-run memo
// and the cross-run cache before going to the register itself.
func (s *EnrichmentService) lookup(
	ctx context.Context, key, rawName string,
	seen map[string][]domain.RegisterEntry, summary *domain.RunSummary,
) ([]domain.RegisterEntry, error) {
	if entries, ok := seen[key]; ok {
		logger.Debug("Reusing this run's results for %q", rawName)
		return entries, nil
	}

	if s.cache != nil {
		entries, ok, err := s.cache.Get(ctx, key, s.cacheTTL)
		if err != nil {
			logger.Warn("Cache read failed for %q: %v", rawName, err)
		} else if ok {
			logger.Debug("Cache hit for %q: %d entries", rawName, len(entries))
			seen[key] = entries
			return entries, nil
		}
	}

	entries, err := s.register.Search(ctx, rawName)
	if err != nil {
		return nil, err
	}
	summary.Searches++
	if s.cache != nil {
		// Cache writes are best effort.
		if err := s.cache.Put(ctx, key, entries); err != nil {
			logger.Warn("Cache write failed for %q: %v", rawName, err)
		}
	}
	seen[key] = entries
	return entries, nil
}

package services

import (
	"fmt"
	"strings"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// Default matching parameters, used when the configuration leaves them
// unset. Tuned against real register names: suffix variants like
// "Boots Pharmacy Ltd" clear the threshold, unrelated pharmacies with
// a shared "Pharmacy" token do not.
const (
	DefaultSimilarityThreshold = 0.75
	DefaultTieMargin           = 0.05
)

// MatchResult is the outcome of matching one query name against a set
// of register entries.
type MatchResult struct {
	// Status is MATCHED, NOT_FOUND or AMBIGUOUS.
	Status domain.MatchStatus

	// Entry is the accepted register entry. Only valid when Status is
	// StatusMatched.
	Entry domain.RegisterEntry

	// Score is the similarity of the best candidate, 0 when there were
	// no candidates.
	Score float64

	// Candidates lists the contending trading names when Status is
	// StatusAmbiguous, for logs and debugging.
	Candidates []string
}

// MatcherService decides which register entry, if any, corresponds to
// a query name.
type MatcherService struct {
	names     driven.NameNormaliser
	scorer    driven.NameScorer
	threshold float64
	tieMargin float64
}

// NewMatcherService creates a new matcher. A threshold outside (0, 1]
// falls back to DefaultSimilarityThreshold, a negative tie margin to
// DefaultTieMargin.
func NewMatcherService(names driven.NameNormaliser, scorer driven.NameScorer, threshold, tieMargin float64) *MatcherService {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	if tieMargin < 0 {
		tieMargin = DefaultTieMargin
	}
	return &MatcherService{
		names:     names,
		scorer:    scorer,
		threshold: threshold,
		tieMargin: tieMargin,
	}
}

// Match scores every entry against query and applies the acceptance
// policy. A query identical (after normalisation) to exactly one entry
// matches that entry outright. Otherwise the best score must reach the
// threshold, and no runner-up may sit within the tie margin of it.
// An empty query is a contract violation and returns ErrInvalidInput;
// an empty entry list is an expected outcome and returns NOT_FOUND.
func (m *MatcherService) Match(query string, entries []domain.RegisterEntry) (MatchResult, error) {
	key := m.names.Key(query)
	if key == "" {
		return MatchResult{}, fmt.Errorf("%w: empty query name", domain.ErrInvalidInput)
	}
	if len(entries) == 0 {
		logger.Debug("No register entries for %q", query)
		return MatchResult{Status: domain.StatusNotFound}, nil
	}

	scores := make([]float64, len(entries))
	var exact []int
	for i, entry := range entries {
		entryKey := m.names.Key(entry.TradingName)
		if entryKey == "" {
			continue
		}
		switch {
		case entryKey == key:
			scores[i] = 1.0
			exact = append(exact, i)
		case strings.Contains(entryKey, key) || strings.Contains(key, entryKey):
			// One name contained in the other counts as a full hit;
			// register names often carry branch or company suffixes.
			scores[i] = 1.0
		default:
			scores[i] = m.scorer.Score(key, entryKey)
		}
	}

	// A single exact name wins outright, even when other entries score
	// 1.0 by containment.
	if len(exact) == 1 {
		logger.Debug("Exact name match for %q: %q", query, entries[exact[0]].TradingName)
		return MatchResult{
			Status: domain.StatusMatched,
			Entry:  entries[exact[0]],
			Score:  1.0,
		}, nil
	}
	if len(exact) > 1 {
		// Same trading name registered more than once, e.g. chain
		// branches in different towns. Nothing to tell them apart by.
		return MatchResult{
			Status:     domain.StatusAmbiguous,
			Score:      1.0,
			Candidates: tradingNames(entries, exact),
		}, nil
	}

	bestIdx, best := -1, 0.0
	for i, score := range scores {
		if score > best {
			best, bestIdx = score, i
		}
	}
	if bestIdx < 0 || best < m.threshold {
		logger.Debug("Best score %.2f for %q below threshold %.2f", best, query, m.threshold)
		return MatchResult{Status: domain.StatusNotFound, Score: best}, nil
	}

	var contenders []int
	for i, score := range scores {
		if score >= m.threshold && score >= best-m.tieMargin {
			contenders = append(contenders, i)
		}
	}
	if len(contenders) > 1 {
		logger.Debug("%d contenders within tie margin for %q", len(contenders), query)
		return MatchResult{
			Status:     domain.StatusAmbiguous,
			Score:      best,
			Candidates: tradingNames(entries, contenders),
		}, nil
	}

	return MatchResult{
		Status: domain.StatusMatched,
		Entry:  entries[bestIdx],
		Score:  best,
	}, nil
}

func tradingNames(entries []domain.RegisterEntry, idx []int) []string {
	names := make([]string, 0, len(idx))
	for _, i := range idx {
		names = append(names, entries[i].TradingName)
	}
	return names
}

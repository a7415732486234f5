package domain

import "time"

// RunSummary describes one completed enrichment run.
type RunSummary struct {
	// RunID uniquely identifies the run in logs and reports.
	RunID string

	// Total is the number of input records processed.
	Total int

	// Matched, NotFound and Ambiguous count records per outcome.
	Matched   int
	NotFound  int
	Ambiguous int

	// Searches is the number of register searches performed, after
	// per-run deduplication and cache hits.
	Searches int

	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// Count returns the counter for the given status.
func (s RunSummary) Count(status MatchStatus) int {
	switch status {
	case StatusMatched:
		return s.Matched
	case StatusNotFound:
		return s.NotFound
	case StatusAmbiguous:
		return s.Ambiguous
	}
	return 0
}

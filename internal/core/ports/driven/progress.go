package driven

import "github.com/RachelGal/pharmacy-scraper/internal/core/domain"

// ProgressReporter receives per-record progress during an enrichment
// run. Implementations render a terminal progress bar or plain log
// lines; a run is never aborted because reporting failed.
type ProgressReporter interface {
	// Start announces a run of total records.
	Start(total int)

	// Step reports one processed record and its outcome.
	Step(name string, status domain.MatchStatus)

	// Finish completes reporting and renders the run summary.
	Finish(summary domain.RunSummary)
}

package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// Ensure LogReporter implements the interface.
var _ driven.ProgressReporter = (*LogReporter)(nil)

// LogReporter prints one line per record instead of a live bar. It is
// the reporter for verbose runs and for output that is not a terminal.
type LogReporter struct {
	out   io.Writer
	total int
	done  int
}

// NewLog creates a line-based reporter. The final summary is written
// to out; per-record lines go through the logger so they reach the run
// log as well.
func NewLog(out io.Writer) *LogReporter {
	return &LogReporter{out: out}
}

// Start records the run size.
func (r *LogReporter) Start(total int) {
	r.total = total
	r.done = 0
	logger.Info("Enriching %d records", total)
}

// Step logs one processed record.
func (r *LogReporter) Step(name string, status domain.MatchStatus) {
	r.done++
	logger.Info("[%d/%d] %s: %s", r.done, r.total, name, status)
}

// Finish writes the run summary.
func (r *LogReporter) Finish(summary domain.RunSummary) {
	fmt.Fprintf(r.out, "Enriched %d records in %s: %d matched, %d not found, %d ambiguous (%d register searches)\n",
		summary.Total, summary.Duration.Round(time.Second),
		summary.Matched, summary.NotFound, summary.Ambiguous, summary.Searches)
	logger.Info("Run complete: %d matched, %d not found, %d ambiguous, %d searches in %s",
		summary.Matched, summary.NotFound, summary.Ambiguous, summary.Searches, summary.Duration.Round(time.Second))
}

// Stop is a no-op; line output needs no teardown.
func (r *LogReporter) Stop() {}

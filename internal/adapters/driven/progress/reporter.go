package progress

import (
	"os"

	"golang.org/x/term"

	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
)

// New picks a reporter for the current run. The animated bar needs an
// interactive stdout and quiet logging; verbose runs and redirected
// output get plain log lines instead.
// Reporter is a ProgressReporter that can also be torn down early when
// a run aborts before Finish.
type Reporter interface {
	driven.ProgressReporter
	Stop()
}

func New(verbose bool) Reporter {
	if !verbose && term.IsTerminal(int(os.Stdout.Fd())) {
		return NewBar()
	}
	return NewLog(os.Stdout)
}

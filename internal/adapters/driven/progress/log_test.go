package progress

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetVerbose(true)
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
	return &buf
}

func TestLogReporter_StepLines(t *testing.T) {
	logged := captureLogger(t)
	r := NewLog(&bytes.Buffer{})

	r.Start(2)
	r.Step("Ace Pharmacy", domain.StatusMatched)
	r.Step("Harbour Pharmacy", domain.StatusNotFound)

	out := logged.String()
	assert.Contains(t, out, "Enriching 2 records")
	assert.Contains(t, out, "[1/2] Ace Pharmacy: MATCHED")
	assert.Contains(t, out, "[2/2] Harbour Pharmacy: NOT_FOUND")
}

func TestLogReporter_FinishWritesSummary(t *testing.T) {
	captureLogger(t)
	var out bytes.Buffer
	r := NewLog(&out)

	r.Start(3)
	r.Finish(domain.RunSummary{
		Total:    3,
		Matched:  2,
		NotFound: 1,
		Searches: 3,
		Duration: 2500 * time.Millisecond,
	})

	summary := out.String()
	assert.Contains(t, summary, "Enriched 3 records in 3s")
	assert.Contains(t, summary, "2 matched")
	assert.Contains(t, summary, "1 not found")
	assert.Contains(t, summary, "0 ambiguous")
	assert.Contains(t, summary, "3 register searches")
}

func TestLogReporter_StartResetsCount(t *testing.T) {
	logged := captureLogger(t)
	r := NewLog(&bytes.Buffer{})

	r.Start(1)
	r.Step("Ace Pharmacy", domain.StatusMatched)
	r.Start(1)
	r.Step("Quay Pharmacy", domain.StatusMatched)

	assert.Contains(t, logged.String(), "[1/1] Quay Pharmacy: MATCHED")
}

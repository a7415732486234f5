package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_VerbosePicksLogReporter(t *testing.T) {
	r := New(true)

	assert.IsType(t, &LogReporter{}, r)
}

func TestNew_NonTerminalPicksLogReporter(t *testing.T) {
	// Test runners do not attach stdout to a terminal, so the quiet
	// path must also fall back to plain lines here.
	r := New(false)

	assert.IsType(t, &LogReporter{}, r)
}

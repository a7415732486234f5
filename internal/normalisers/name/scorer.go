package name

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
)

// Ensure Scorer implements the interface.
var _ driven.NameScorer = (*Scorer)(nil)

// Scorer measures name similarity with the Sørensen-Dice coefficient
// over character bigrams. Dice tolerates word reordering and small
// spelling differences well, which suits trading names ("Boots
// Pharmacy" vs "Boots Pharmacy Ltd" scores high, unrelated names low).
type Scorer struct {
	metric *metrics.SorensenDice
}

// NewScorer creates a new similarity scorer.
func NewScorer() *Scorer {
	m := metrics.NewSorensenDice()
	m.CaseSensitive = false
	return &Scorer{metric: m}
}

// Score returns the similarity of a and b in [0, 1].
func (s *Scorer) Score(a, b string) float64 {
	return strutil.Similarity(a, b, s.metric)
}

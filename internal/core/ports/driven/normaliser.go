package driven

// PhoneNormaliser converts raw phone number text into the canonical
// "+353 ..." format.
type PhoneNormaliser interface {
	// Normalise returns the canonical form of raw, or
	// domain.ErrInvalidPhone when no valid number can be extracted.
	Normalise(raw string) (string, error)
}

// NameNormaliser reduces pharmacy names to comparable match keys.
// Keys are case, accent, punctuation and whitespace insensitive, so
// "O'Brien Pharmacy" and "o brien pharmacy" collide deliberately.
type NameNormaliser interface {
	// Key returns the match key for name. Empty input yields an empty key.
	Key(name string) string
}

// NameScorer measures how alike two match keys are.
type NameScorer interface {
	// Score returns a similarity in [0, 1]. It is symmetric:
	// Score(a, b) == Score(b, a).
	Score(a, b string) float64
}

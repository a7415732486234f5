package domain

import "fmt"

// MatchStatus records the outcome of matching an input name against
// register search results.
type MatchStatus string

const (
	// StatusMatched means exactly one register entry was accepted for the name.
	StatusMatched MatchStatus = "MATCHED"
	// StatusNotFound means the search returned nothing usable above the
	// similarity threshold.
	StatusNotFound MatchStatus = "NOT_FOUND"
	// StatusAmbiguous means two or more entries scored too close to call.
	StatusAmbiguous MatchStatus = "AMBIGUOUS"
)

// Valid reports whether s is one of the three defined statuses.
func (s MatchStatus) Valid() bool {
	switch s {
	case StatusMatched, StatusNotFound, StatusAmbiguous:
		return true
	}
	return false
}

// ParseMatchStatus converts a stored status string back to a MatchStatus.
// An empty string maps to StatusMatched: datasets written before statuses
// were tracked only contain rows that had been enriched successfully.
func ParseMatchStatus(s string) (MatchStatus, error) {
	if s == "" {
		return StatusMatched, nil
	}
	status := MatchStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: match status %q", ErrInvalidInput, s)
	}
	return status, nil
}

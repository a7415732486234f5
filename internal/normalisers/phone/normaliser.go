package phone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.PhoneNormaliser = (*Normaliser)(nil)

var (
	// extensionRe matches a 5-digit internal extension written before a
	// parenthesised area code, e.g. "22605 (042) 9322605". The area code
	// group is kept, the extension dropped.
	extensionRe = regexp.MustCompile(`^\s*\d{5}\s*(\(0?\d{1,3}\))`)

	// dupAreaRe matches an area code immediately repeated in parentheses,
	// optionally behind a country prefix, e.g. "353 71 (071) 9142696".
	// Whether the parenthesised code really duplicates the plain one is
	// checked in code; the pattern alone cannot compare the groups.
	dupAreaRe = regexp.MustCompile(`(353|00353|\+353)?\s*(\d{1,2})\s*\(0?(\d{1,3})\)`)

	// nonDigitRe strips everything except digits and a plus sign.
	nonDigitRe = regexp.MustCompile(`[^\d+]`)

	// countryRe strips the Irish country code in any of its spellings.
	countryRe = regexp.MustCompile(`^(00|\+)?353`)
)

// mobilePrefixes are the Irish mobile network codes.
var mobilePrefixes = map[string]bool{
	"83": true, "85": true, "86": true, "87": true, "89": true,
}

// Normaliser converts raw phone number text into the canonical
// "+353 ..." format used across the dataset.
type Normaliser struct{}

// New creates a new phone normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise extracts one Irish phone number from raw and returns it in
// canonical form. Fields holding several numbers yield the first that
// normalises. It returns domain.ErrInvalidPhone when no valid number
// can be extracted; callers leave the phone field empty in that case.
func (n *Normaliser) Normalise(raw string) (string, error) {
	if num, err := normaliseOne(raw); err == nil {
		return num, nil
	}
	// The field may hold several numbers. Try each part in turn.
	for _, part := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == '/' || r == ';' || r == ','
	}) {
		if num, err := normaliseOne(part); err == nil {
			return num, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidPhone, raw)
}

func normaliseOne(raw string) (string, error) {
	raw = extensionRe.ReplaceAllString(raw, "$1")
	raw = collapseDuplicateArea(raw)

	clean := nonDigitRe.ReplaceAllString(raw, "")
	clean = countryRe.ReplaceAllString(clean, "")
	clean = strings.TrimLeft(clean, "0")

	switch {
	case len(clean) == 9 && mobilePrefixes[clean[:2]]:
		return fmt.Sprintf("+353 %s %s %s", clean[:2], clean[2:5], clean[5:]), nil
	case len(clean) == 8 && clean[0] == '1':
		// Dublin landline.
		return fmt.Sprintf("+353 1 %s %s", clean[1:4], clean[4:]), nil
	case len(clean) == 7:
		return fmt.Sprintf("+353 %s %s", clean[:2], clean[2:]), nil
	case len(clean) == 8:
		return fmt.Sprintf("+353 %s %s %s", clean[:2], clean[2:5], clean[5:]), nil
	case len(clean) == 9:
		return fmt.Sprintf("+353 %s %s %s", clean[:2], clean[2:5], clean[5:]), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidPhone, raw)
}

// collapseDuplicateArea rewrites "353 71 (071) ..." style numbers where
// the area code appears twice, keeping it once.
func collapseDuplicateArea(s string) string {
	return dupAreaRe.ReplaceAllStringFunc(s, func(m string) string {
		g := dupAreaRe.FindStringSubmatch(m)
		if g[2] != g[3] {
			return m
		}
		return g[1] + " " + g[2]
	})
}

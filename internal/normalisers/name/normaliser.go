package name

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.NameNormaliser = (*Normaliser)(nil)

// nonAlnumRe matches runs of anything that is not a letter or digit.
// Apostrophes, hyphens, ampersands and the rest all become spaces so
// "O'Brien's" and "O Briens" produce the same key.
var nonAlnumRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Normaliser reduces pharmacy names to match keys: lower case, accents
// stripped, punctuation removed, whitespace collapsed.
type Normaliser struct{}

// New creates a new name normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Key returns the match key for name.
func (n *Normaliser) Key(name string) string {
	s := strings.ToLower(name)
	s = stripAccents(s)
	s = nonAlnumRe.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// stripAccents decomposes accented characters and drops the combining
// marks, so "Céilí" becomes "Ceili". The transformer chain is built per
// call; transformers carry state and are not safe to share.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

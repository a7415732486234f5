package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestKey(t *testing.T) {
	normaliser := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "BOOTS PHARMACY", "boots pharmacy"},
		{"collapses whitespace", "  Boots   Pharmacy  ", "boots pharmacy"},
		{"strips apostrophes", "O'Brien's Pharmacy", "o brien s pharmacy"},
		{"strips punctuation", "Hickey's Pharmacy, Ltd.", "hickey s pharmacy ltd"},
		{"strips accents", "Céilí Pharmacy", "ceili pharmacy"},
		{"ampersand", "Smith & Jones Pharmacy", "smith jones pharmacy"},
		{"keeps digits", "Pharmacy 24", "pharmacy 24"},
		{"empty", "", ""},
		{"punctuation only", "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normaliser.Key(tt.input))
		})
	}
}

// TestKey_CollidesAcrossSpellings tests that spelling variants of the
// same pharmacy produce identical keys
func TestKey_CollidesAcrossSpellings(t *testing.T) {
	normaliser := New()

	variants := [][2]string{
		{"O'Brien Pharmacy", "o brien pharmacy"},
		{"O'Brien Pharmacy", "O  Brien  PHARMACY"},
		{"Walsh's Pharmacy", "Walsh s Pharmacy"},
		{"Séan's Pharmacy", "Sean's Pharmacy"},
	}

	for _, v := range variants {
		t.Run(v[0]+" vs "+v[1], func(t *testing.T) {
			assert.Equal(t, normaliser.Key(v[0]), normaliser.Key(v[1]))
		})
	}
}

func BenchmarkKey(b *testing.B) {
	normaliser := New()
	for i := 0; i < b.N; i++ {
		normaliser.Key("O'Brien's Pharmacy, Main Street")
	}
}

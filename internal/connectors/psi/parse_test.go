package psi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultsPageHTML mirrors the register's results markup: one list item
// per pharmacy, details in label/value rows. The second card carries
// the zero width characters the live register pads values with.
const resultsPageHTML = `<html><body>
<ul class="results-list">
  <li>
    <div class="results-item">
      <div class="results-item__header"><div class="results-item__header__text">
        <h2>O'Brien Pharmacy</h2>
      </div></div>
      <p><span>PSI Registration Number:</span> 1055</p>
      <p><span>Address:</span> Main Street, Sligo, F91 PP32</p>
      <p><span>Tel:</span> (071) 9142696</p>
      <p><span>Web:</span> https://obrienpharmacy.ie</p>
      <p><span>Superintendent Pharmacist:</span> Mary O'Brien</p>
      <p><span>Supervising Pharmacist:</span> John O'Brien</p>
    </div>
  </li>
  <li>
    <div class="results-item">
      <div class="results-item__header"><div class="results-item__header__text">
        <h2>O'Brien Pharmacy Ltd</h2>
      </div></div>
      <p><span>PSI Registration Number:</span>` + "\u200b" + ` 2101` + "\u200b" + `</p>
      <p><span>Tel:</span> 01 234 5678</p>
    </div>
  </li>
</ul>
</body></html>`

func TestParseResults_ExtractsAllFields(t *testing.T) {
	entries, err := parseResults(resultsPageHTML)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "O'Brien Pharmacy", first.TradingName)
	assert.Equal(t, "1055", first.RegistrationNumber)
	assert.Equal(t, "Main Street, Sligo, F91 PP32", first.Address)
	assert.Equal(t, "(071) 9142696", first.Phone)
	assert.Equal(t, "https://obrienpharmacy.ie", first.Website)
	assert.Equal(t, "Mary O'Brien", first.Superintendent)
	assert.Equal(t, "John O'Brien", first.Supervising)
}

// TestParseResults_HiddenCharactersStripped tests that zero width
// padding around values does not leak into the extracted fields
func TestParseResults_HiddenCharactersStripped(t *testing.T) {
	entries, err := parseResults(resultsPageHTML)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "2101", entries[1].RegistrationNumber)
}

// TestParseResults_MissingRowsYieldEmptyFields tests partial cards
func TestParseResults_MissingRowsYieldEmptyFields(t *testing.T) {
	entries, err := parseResults(resultsPageHTML)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	second := entries[1]
	assert.Equal(t, "O'Brien Pharmacy Ltd", second.TradingName)
	assert.Equal(t, "01 234 5678", second.Phone)
	assert.Empty(t, second.Address)
	assert.Empty(t, second.Website)
	assert.Empty(t, second.Superintendent)
	assert.Empty(t, second.Supervising)
}

func TestParseResults_NoResultsList(t *testing.T) {
	entries, err := parseResults(`<html><body><p>Nothing here</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// TestParseResults_SkipsEmptyCards tests that decorative list items
// without a name or registration number are dropped
func TestParseResults_SkipsEmptyCards(t *testing.T) {
	html := `<html><body><ul class="results-list">
	  <li><div class="results-item"><p><span>Tel:</span> 01 234 5678</p></div></li>
	  <li><div class="results-item">
	    <div class="results-item__header__text"><h2>Walsh's Pharmacy</h2></div>
	  </div></li>
	</ul></body></html>`

	entries, err := parseResults(html)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Walsh's Pharmacy", entries[0].TradingName)
}

// TestParseResults_WebsiteKeepsScheme tests that URL values survive
// label stripping with their colons intact
func TestParseResults_WebsiteKeepsScheme(t *testing.T) {
	html := `<html><body><ul class="results-list"><li><div class="results-item">
	  <div class="results-item__header__text"><h2>Ace Pharmacy</h2></div>
	  <p><span>Web:</span> http://ace.example.com/contact</p>
	</div></li></ul></body></html>`

	entries, err := parseResults(html)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "http://ace.example.com/contact", entries[0].Website)
}

func TestCleanQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Ace Pharmacy", "Ace Pharmacy"},
		{"surrounding whitespace", "  Ace Pharmacy  ", "Ace Pharmacy"},
		{"quoted name", `"Ace Pharmacy"`, "Ace Pharmacy"},
		{"quoted and padded", `  "Ace Pharmacy"  `, "Ace Pharmacy"},
		{"inner quotes kept", `Ace "The Chemist" Pharmacy`, `Ace "The Chemist" Pharmacy`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanQuery(tt.input))
		})
	}
}

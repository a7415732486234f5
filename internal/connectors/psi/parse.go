package psi

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
)

// Field labels as rendered on the register's result cards. Each card
// lists its details as <p><span>Label:</span> value</p> rows.
const (
	labelRegistration   = "PSI Registration Number:"
	labelPhone          = "Tel:"
	labelAddress        = "Address:"
	labelWebsite        = "Web:"
	labelSuperintendent = "Superintendent Pharmacist:"
	labelSupervising    = "Supervising Pharmacist:"
)

// parseResults extracts register entries from one results page.
func parseResults(html string) ([]domain.RegisterEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	var entries []domain.RegisterEntry
	doc.Find("ul.results-list > li > div.results-item").Each(func(_ int, item *goquery.Selection) {
		entry := parseEntry(item)
		if entry.TradingName == "" && entry.RegistrationNumber == "" {
			return
		}
		entries = append(entries, entry)
	})
	return entries, nil
}

// parseEntry reads one result card.
func parseEntry(item *goquery.Selection) domain.RegisterEntry {
	return domain.RegisterEntry{
		TradingName:        cleanValue(item.Find("div.results-item__header__text > h2").First().Text()),
		RegistrationNumber: labelValue(item, labelRegistration),
		Phone:              labelValue(item, labelPhone),
		Address:            labelValue(item, labelAddress),
		Website:            labelValue(item, labelWebsite),
		Superintendent:     labelValue(item, labelSuperintendent),
		Supervising:        labelValue(item, labelSupervising),
	}
}

// labelValue finds the card row whose leading span carries the given
// label and returns the text after it. Missing rows yield "".
func labelValue(item *goquery.Selection, label string) string {
	value := ""
	item.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		span := p.Find("span").First()
		if cleanValue(span.Text()) != label {
			return true
		}
		text := cleanValue(p.Text())
		if idx := strings.Index(text, label); idx >= 0 {
			value = strings.TrimSpace(text[idx+len(label):])
		}
		return false
	})
	return value
}

// cleanValue trims whitespace and the invisible characters the register
// markup pads some values with: zero-width space, direction marks, soft
// hyphen and byte order mark.
func cleanValue(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200e', '\u200f', '\u00ad', '\ufeff':
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// cleanQuery sanitises a trading name before it is typed into the
// register's search box.
func cleanQuery(name string) string {
	name = strings.TrimSpace(name)
	return strings.Trim(name, `"`)
}

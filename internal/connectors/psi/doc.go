// Package psi implements a client for the public pharmacy register at
// psi.ie. The register has no API; this connector drives a headless
// Chrome session against its search page and parses the rendered HTML.
//
// # Architecture
//
// The connector follows the driven port pattern defined in
// [driven.RegisterClient]. It comprises the following components:
//
//   - Connector: owns the shared browser process and the search flow
//   - client: the chromedp tasks that submit queries and turn pages
//   - parse: goquery extraction of register entries from page HTML
//   - Config: browser and timing settings
//
// # Search Flow
//
// Each search opens a fresh tab, loads the search page, types the
// trading name into the search box and submits it. The connector then
// waits for the results list, reads the page HTML and extracts one
// entry per result card. Cards label their details with leading spans
// (PSI Registration Number, Tel, Web, Address, Superintendent
// Pharmacist, Supervising Pharmacist); extraction is keyed on those
// labels, so reordered cards still parse.
//
// # Pagination
//
// Result lists spanning several pages are walked through the register's
// next button until it reports itself disabled. Entries are
// deduplicated by registration number across pages. A search that never
// renders a results list is an empty result, not an error; only a
// search page that fails to load at all reports
// [domain.ErrRegisterUnavailable].
//
// # Rate Limiting
//
// A token bucket spaces page loads by Config.RequestDelay. This
// connector talks to a public registry with no published usage policy,
// so it crawls slowly and identifies itself with a plain browser user
// agent.
//
// # Example Usage
//
//	connector := psi.New(psi.DefaultConfig())
//	defer connector.Close()
//
//	if err := connector.Validate(ctx); err != nil {
//	    return err
//	}
//	entries, err := connector.Search(ctx, "O'Brien Pharmacy")
package psi

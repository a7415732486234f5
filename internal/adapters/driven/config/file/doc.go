// Package file provides a file-based implementation of the ConfigStore
// driven port.
//
// Configuration lives in a TOML file at ~/.pharmacy-scraper/config.toml.
// Keys are flattened to dot notation on load, so a hand-written section
//
//	[register]
//	base_url = "https://www.psi.ie/search-registers"
//	headless = false
//
// reads the same as a programmatically saved "register.base_url" key.
// The file is written with 0600 permissions and every Set persists
// immediately.
package file

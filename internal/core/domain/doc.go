// Package domain defines the core business entities for pharmacy-scraper.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - InputRecord: A pharmacy name supplied by the user
//   - RegisterEntry: One search result scraped from the public register
//   - EnrichedRecord: A pharmacy with contact details and a match status
//   - Dataset: The ordered, deduplicated collection of enriched records
//   - Change: A single difference between two dataset generations
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package sqlite provides a SQLite-backed implementation of the
// ResultCache driven port.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. Register searches are
// slow because each one drives a real browser session, so their results are
// worth keeping between runs: a pharmacy that was looked up yesterday does
// not need the register again today.
//
// # Schema
//
// The cache is a single searches table keyed by the normalised query name,
// with the result list stored as a JSON column and a fetch timestamp used
// for expiry. Empty result lists are cached too; "no results" is an answer.
//
// # Data Location
//
// By default, the database is stored at ~/.pharmacy-scraper/data/cache.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite

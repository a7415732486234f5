package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/core/ports/driven"
)

// Store is a SQLite-backed cache of register search results. Each row
// holds the full result list for one normalised query, so a repeated
// run can reuse yesterday's searches instead of driving the browser.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.ResultCache = (*Store)(nil)

// NewStore creates a new SQLite cache in the specified data directory.
// If dataDir is empty, defaults to ~/.pharmacy-scraper/data/cache.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".pharmacy-scraper", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "cache.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialising schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// init creates the searches table. The schema is a single table, so
// CREATE IF NOT EXISTS covers it without a migration history.
func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS searches (
			query TEXT PRIMARY KEY,
			entries TEXT NOT NULL,
			fetched_at DATETIME NOT NULL
		)
	`)
	return err
}

// Get returns the entries cached for key. ok is false on a miss or
// when the row is older than maxAge; maxAge <= 0 disables expiry.
func (s *Store) Get(ctx context.Context, key string, maxAge time.Duration) ([]domain.RegisterEntry, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT entries, fetched_at FROM searches WHERE query = ?
	`, key)

	var entriesJSON string
	var fetchedAt time.Time
	if err := row.Scan(&entriesJSON, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("scanning search: %w", err)
	}

	if maxAge > 0 && time.Since(fetchedAt) > maxAge {
		return nil, false, nil
	}

	var entries []domain.RegisterEntry
	if err := json.Unmarshal([]byte(entriesJSON), &entries); err != nil {
		return nil, false, fmt.Errorf("unmarshalling entries: %w", err)
	}

	return entries, true, nil
}

// Put stores the entries for key, replacing any previous value. An
// empty result list is stored too; "no results" is a cacheable answer.
func (s *Store) Put(ctx context.Context, key string, entries []domain.RegisterEntry) error {
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshalling entries: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO searches (query, entries, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(query) DO UPDATE SET
			entries = excluded.entries,
			fetched_at = excluded.fetched_at
	`, key, string(entriesJSON), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving search: %w", err)
	}
	return nil
}

// Clear removes all cached searches.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM searches"); err != nil {
		return fmt.Errorf("clearing searches: %w", err)
	}
	return nil
}

// Stats returns the number of cached searches and the fetch time of
// the oldest one. The zero time means the cache is empty.
func (s *Store) Stats(ctx context.Context) (int, time.Time, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM searches").Scan(&count)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("counting searches: %w", err)
	}

	if count == 0 {
		return 0, time.Time{}, nil
	}

	// MIN(fetched_at) comes back as bare text, so select the column
	// itself and let the driver convert it.
	var oldest time.Time
	err = s.db.QueryRowContext(ctx, `
		SELECT fetched_at FROM searches ORDER BY fetched_at LIMIT 1
	`).Scan(&oldest)
	if err != nil {
		if err == sql.ErrNoRows {
			return count, time.Time{}, nil
		}
		return 0, time.Time{}, fmt.Errorf("finding oldest search: %w", err)
	}

	return count, oldest, nil
}

// Package store caches fetched dataset payloads in a local DuckDB file so
// offline builds and fetch-failure fallbacks have something to render. The
// generated site itself stays read-only; this cache belongs to the build
// tool, not the product.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Dataset kinds the cache knows about.
const (
	KindRunning  = "running"
	KindVenues   = "venues"
	KindFeatured = "featured"
	KindTopology = "topology"
)

// Store manages the dataset cache via DuckDB.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// DatasetInfo summarizes one cached dataset for the status command.
type DatasetInfo struct {
	Kind      string
	Bytes     int
	FetchedAt time.Time
}

// New opens (or creates) the cache database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "personal-site.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	_, err := s.DB.Exec(`CREATE TABLE IF NOT EXISTS datasets (
		kind TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		fetched_at TIMESTAMP NOT NULL
	)`)
	return err
}

// Put stores (or replaces) a dataset payload.
func (s *Store) Put(kind string, payload []byte) error {
	_, err := s.DB.Exec(
		`INSERT OR REPLACE INTO datasets (kind, payload, fetched_at) VALUES (?, ?, ?)`,
		kind, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("caching %s dataset: %w", kind, err)
	}
	return nil
}

// Get returns a cached payload and when it was fetched. sql.ErrNoRows
// signals an empty cache slot.
func (s *Store) Get(kind string) ([]byte, time.Time, error) {
	var payload string
	var fetchedAt time.Time
	err := s.DB.QueryRow(
		`SELECT payload, fetched_at FROM datasets WHERE kind = ?`, kind,
	).Scan(&payload, &fetchedAt)
	if err != nil {
		return nil, time.Time{}, err
	}
	return []byte(payload), fetchedAt, nil
}

// Summary lists every cached dataset.
func (s *Store) Summary() ([]DatasetInfo, error) {
	rows, err := s.DB.Query(
		`SELECT kind, length(payload), fetched_at FROM datasets ORDER BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []DatasetInfo
	for rows.Next() {
		var info DatasetInfo
		if err := rows.Scan(&info.Kind, &info.Bytes, &info.FetchedAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

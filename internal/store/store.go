// Package store provides durable typed key-value persistence backed by
// SQLite, with an in-memory mirror of every loaded or saved value.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Well-known keys.
const (
	KeyBudgetData = "budget-data"
	KeyDarkMode   = "dark-mode"
)

// Store is a typed key-value store over a local SQLite file. It is
// owned by a single process; there is no cross-process arbitration.
type Store struct {
	db     *sql.DB
	mirror map[string]string // key -> raw JSON, write-through
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, mirror: make(map[string]string)}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the value stored under key into a value of type T. A
// missing key or a payload that does not decode as T yields def; a read
// never fails the caller.
func Load[T any](s *Store, key string, def T) T {
	raw, ok := s.mirror[key]
	if !ok {
		err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
		if err != nil {
			// Covers sql.ErrNoRows and any read failure alike.
			return def
		}
		s.mirror[key] = raw
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

// Save serializes v and persists it under key, replacing any previous
// value. The write is synchronous: once Save returns nil, a Load in the
// same session observes the new value. A non-nil error means the change
// will not survive a restart and should be surfaced as a warning.
func Save[T any](s *Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	// Mirror first: the in-memory state stays the user's expectation
	// even when the disk write fails.
	s.mirror[key] = string(raw)

	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, string(raw),
	); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

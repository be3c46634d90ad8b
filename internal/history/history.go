// Package history keeps an audit trail of tool invocations in a local
// sqlite database. The store is optional; a nil *Store ignores writes.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded tool invocation.
type Entry struct {
	ID      int64     `json:"id"`
	Path    string    `json:"path"`
	Tool    string    `json:"tool"`
	OK      bool      `json:"ok"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Store wraps the sqlite database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS operations (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	path    TEXT NOT NULL,
	tool    TEXT NOT NULL,
	ok      INTEGER NOT NULL,
	message TEXT NOT NULL,
	at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_operations_path ON operations(path, at);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores one invocation. A nil store drops the record.
func (s *Store) Record(path, tool string, ok bool, message string) error {
	if s == nil {
		return nil
	}
	_, err := s.db.Exec(
		`INSERT INTO operations (path, tool, ok, message) VALUES (?, ?, ?, ?)`,
		path, tool, ok, message,
	)
	return err
}

// List returns the most recent entries for a document path, newest first.
func (s *Store) List(path string, limit int) ([]Entry, error) {
	if s == nil {
		return nil, fmt.Errorf("history store is not configured (set HISTORY_DB_PATH)")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, path, tool, ok, message, at FROM operations
		 WHERE path = ? ORDER BY at DESC, id DESC LIMIT ?`,
		path, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ok int
		if err := rows.Scan(&e.ID, &e.Path, &e.Tool, &ok, &e.Message, &e.At); err != nil {
			return nil, err
		}
		e.OK = ok != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

// Prune removes entries older than ttl and returns how many were deleted.
func (s *Store) Prune(ttl time.Duration) (int64, error) {
	if s == nil {
		return 0, nil
	}
	res, err := s.db.Exec(
		`DELETE FROM operations WHERE at < ?`,
		time.Now().Add(-ttl),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite keeps every slot in a single two-column table, one row per slot,
// the whole document as a TEXT value.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the slot database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS slots (
  name TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`); err != nil {
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(slot string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slots WHERE name = ?`, slot).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %q: %w", slot, err)
	}
	return []byte(value), true, nil
}

func (s *SQLite) Set(slot string, data []byte) error {
	_, err := s.db.Exec(`
INSERT INTO slots(name, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(name) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, slot, string(data), time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

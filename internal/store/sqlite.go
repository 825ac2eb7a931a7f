package store

import (
	"database/sql"
	"fmt"
)

// SQLite implements [Store] over the profile database's records table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a new [SQLite] store with the given database connection.
//
// The records table is created by the shared migration runner during setup.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Read returns the payload for key, or (nil, nil) when no record exists.
func (s *SQLite) Read(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return []byte(value), nil
}

// Write replaces the payload for key.
func (s *SQLite) Write(key string, value []byte) error {
	query := `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := s.db.Exec(query, key, string(value)); err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}

	return nil
}

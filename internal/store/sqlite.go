package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLite implements Store using SQLite, one JSON document per
// collection.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite store and runs migrations.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// GetCollection returns the raw JSON document of a collection, or nil
// if the collection has never been written.
func (s *SQLite) GetCollection(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT data FROM collections WHERE name = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying collection %s: %w", name, err)
	}
	return data, nil
}

// SetCollection replaces a collection's JSON document.
func (s *SQLite) SetCollection(ctx context.Context, name string, data []byte) error {
	query := `
		INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, name, data, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", name, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating collections table: %w", err)
	}

	return nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const slotSchema = `CREATE TABLE IF NOT EXISTS slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLite stores slots as rows of a key-value table.
type SQLite struct {
	db  *sql.DB
	key string
}

// OpenSQLite opens (or creates) the database at path and prepares the table.
func OpenSQLite(ctx context.Context, path, key string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}
	if _, err := db.ExecContext(ctx, slotSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return &SQLite{db: db, key: key}, nil
}

// Read implements Slot.
func (s *SQLite) Read(ctx context.Context) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key = ?", s.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot %q: %w", s.key, err)
	}
	return []byte(value), nil
}

// Write implements Slot.
func (s *SQLite) Write(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, string(data))
	if err != nil {
		return fmt.Errorf("write slot %q: %w", s.key, err)
	}
	return nil
}

// Close implements Slot.
func (s *SQLite) Close() error {
	return s.db.Close()
}

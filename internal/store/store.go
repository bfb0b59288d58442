// Package store persists the colour catalog to SQLite and provides
// compressed snapshot export and import.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "github.com/mattn/go-sqlite3"

	"swatchbook/internal/catalog"
	"swatchbook/internal/colour"
)

const schema = `
CREATE TABLE IF NOT EXISTS colors (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL UNIQUE,
	hex      TEXT NOT NULL,
	hue      TEXT NOT NULL,
	keywords TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_colors_hue ON colors(hue);
`

// Store wraps the SQLite database holding the catalog.
type Store struct {
	db     *sql.DB
	logger hclog.Logger
}

// Open opens (or creates) the catalog database at path. Use ":memory:" for
// an ephemeral in-memory database.
func Open(path string, logger hclog.Logger) (*Store, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY on concurrent saves.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Debug("database opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the stored catalog with the given colours in a single
// transaction. Either the whole catalog is written or nothing changes.
func (s *Store) Save(ctx context.Context, colors []catalog.Color) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM colors"); err != nil {
		return fmt.Errorf("failed to clear colors: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO colors (id, name, hex, hue, keywords, position) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, col := range colors {
		if _, err := stmt.ExecContext(ctx,
			col.ID, col.Name, col.Hex, string(col.Hue), joinKeywords(col.Keywords), i); err != nil {
			return fmt.Errorf("failed to insert colour %q: %w", col.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.logger.Debug("catalog saved", "colors", len(colors))
	return nil
}

// Load reads the stored catalog in its original order. An empty database
// yields an empty slice and no error.
func (s *Store) Load(ctx context.Context) ([]catalog.Color, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, hex, hue, keywords FROM colors ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	var colors []catalog.Color
	for rows.Next() {
		var col catalog.Color
		var hue, keywords string
		if err := rows.Scan(&col.ID, &col.Name, &col.Hex, &hue, &keywords); err != nil {
			return nil, fmt.Errorf("failed to scan colour: %w", err)
		}
		col.Hue = colour.Hue(hue)
		col.Keywords = splitKeywords(keywords)
		colors = append(colors, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read colors: %w", err)
	}
	return colors, nil
}

// Count returns the number of stored colours.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM colors").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count colors: %w", err)
	}
	return n, nil
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ",")
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Preferences are the persisted UI settings. Catalog data is deliberately
// never stored; only how the user last looked at it survives a session.
type Preferences struct {
	ViewMode  string
	SortKey   string
	SortOrder string
	Compact   bool
}

// DefaultPreferences match a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		ViewMode:  "list",
		SortKey:   "id",
		SortOrder: "asc",
	}
}

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS ui_preferences (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  view_mode TEXT NOT NULL,
  sort_key TEXT NOT NULL,
  sort_order TEXT NOT NULL,
  compact INTEGER NOT NULL,
  updated_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// CheckWritable proves the database file accepts writes before the UI
// starts, using a rolled-back transaction so nothing persists.
func (r *Repository) CheckWritable(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write check: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO ui_preferences (id, view_mode, sort_key, sort_order, compact, updated_at)
VALUES (1, 'list', 'id', 'asc', 0, '')
ON CONFLICT(id) DO UPDATE SET updated_at=ui_preferences.updated_at
`); err != nil {
		return fmt.Errorf("write check: %w", err)
	}
	return tx.Rollback()
}

// LoadPreferences returns the stored preferences, or defaults when none have
// been saved yet.
func (r *Repository) LoadPreferences(ctx context.Context) (Preferences, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT view_mode, sort_key, sort_order, compact
FROM ui_preferences
WHERE id = 1
`)

	var p Preferences
	var compact int
	err := row.Scan(&p.ViewMode, &p.SortKey, &p.SortOrder, &compact)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultPreferences(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	p.Compact = compact != 0
	return p, nil
}

func (r *Repository) SavePreferences(ctx context.Context, p Preferences) error {
	compact := 0
	if p.Compact {
		compact = 1
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO ui_preferences (id, view_mode, sort_key, sort_order, compact, updated_at)
VALUES (1, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  view_mode=excluded.view_mode,
  sort_key=excluded.sort_key,
  sort_order=excluded.sort_order,
  compact=excluded.compact,
  updated_at=excluded.updated_at
`, p.ViewMode, p.SortKey, p.SortOrder, compact, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Package gallery records rendered cards in a local SQLite database.
package gallery

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("gallery entry not found")

// Entry is one recorded render.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Footer    string    `json:"footer"`
	Theme     string    `json:"theme"`
	Variation int       `json:"variation"`
	Aspect    string    `json:"aspect"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Format    string    `json:"format"`
	Location  string    `json:"location,omitempty"` // File path the render was saved to, if any
	Tags      []string  `json:"tags,omitempty"`
}

const schema = `
CREATE TABLE IF NOT EXISTS renders (
	id         TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	title      TEXT NOT NULL,
	message    TEXT NOT NULL,
	footer     TEXT NOT NULL,
	theme      TEXT NOT NULL,
	variation  INTEGER NOT NULL,
	aspect     TEXT NOT NULL,
	width      INTEGER NOT NULL,
	height     INTEGER NOT NULL,
	format     TEXT NOT NULL,
	location   TEXT NOT NULL DEFAULT '',
	tags       TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS renders_created_at ON renders(created_at DESC);
`

// Store is a gallery backed by one SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the gallery at path. Use ":memory:" for a
// throwaway store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating gallery dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps :memory: databases and writes consistent.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores e, replacing any entry with the same id.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return errors.New("gallery entry needs an id")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return fmt.Errorf("encoding tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO renders
			(id, created_at, title, message, footer, theme, variation, aspect, width, height, format, location, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.CreatedAt.UnixNano(), e.Title, e.Message, e.Footer, e.Theme, e.Variation,
		e.Aspect, e.Width, e.Height, e.Format, e.Location, string(tags))
	if err != nil {
		return fmt.Errorf("recording render: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, title, message, footer, theme, variation, aspect, width, height, format, location, tags
		FROM renders
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying renders: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get returns the entry with id.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, title, message, footer, theme, variation, aspect, width, height, format, location, tags
		FROM renders
		WHERE id = ?
	`, id)
	e, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, err
}

// Delete removes the entry with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM renders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting render: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(r scanner) (Entry, error) {
	var (
		e       Entry
		created int64
		tags    string
	)
	if err := r.Scan(
		&e.ID, &created, &e.Title, &e.Message, &e.Footer, &e.Theme, &e.Variation,
		&e.Aspect, &e.Width, &e.Height, &e.Format, &e.Location, &tags,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scanning render: %w", err)
	}
	e.CreatedAt = time.Unix(0, created)
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		e.Tags = nil // Skip malformed tags
	}
	return e, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a SQLite index of the notes written by the last
// run so they can be searched by title, tag, note text, category, and
// collection. The index is rebuilt from scratch on every run.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/zotero-notes/pkg/types"
)

const defaultLimit = 20

// Entry is one indexed note.
type Entry struct {
	ID          string         `json:"id" yaml:"id"`
	Category    types.Category `json:"category" yaml:"category"`
	Title       string         `json:"title" yaml:"title"`
	Path        string         `json:"path" yaml:"path"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Collections []string       `json:"collections,omitempty" yaml:"collections,omitempty"`
	Notes       string         `json:"-" yaml:"-"`
}

// Run describes the pipeline run that produced the indexed notes.
type Run struct {
	ID          string
	StartedAt   time.Time
	LibraryPath string
	Written     int
	Failed      int
}

// Query selects entries. Empty fields do not filter.
type Query struct {
	Text       string
	Category   types.Category
	Collection string
	Limit      int
}

// Store is the catalog database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			library_path TEXT,
			written INTEGER,
			failed INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			id TEXT NOT NULL,
			category TEXT NOT NULL,
			title TEXT,
			tags TEXT,
			collections TEXT,
			notes TEXT,
			run_id TEXT NOT NULL REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_category ON notes(category)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_id ON notes(id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Rebuild replaces the indexed notes with entries and records run. Entries
// sharing a path keep the last one, matching the files on disk.
func (s *Store) Rebuild(ctx context.Context, run Run, entries []Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, library_path, written, failed) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.LibraryPath, run.Written, run.Failed,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO notes (path, id, category, title, tags, collections, notes, run_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		tagsJSON, _ := json.Marshal(nonNil(e.Tags))
		collJSON, _ := json.Marshal(nonNil(e.Collections))
		_, err := stmt.ExecContext(ctx,
			e.Path, e.ID, string(e.Category), e.Title,
			string(tagsJSON), string(collJSON), e.Notes, run.ID,
		)
		if err != nil {
			return fmt.Errorf("inserting note %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// Search returns entries matching q ordered by category and id. Text
// matches case-insensitively against title, tags, and note text.
func (s *Store) Search(ctx context.Context, q Query) ([]Entry, error) {
	var (
		where []string
		args  []any
	)
	if q.Text != "" {
		like := "%" + strings.ToLower(q.Text) + "%"
		where = append(where, `(lower(title) LIKE ? OR lower(tags) LIKE ? OR lower(notes) LIKE ?)`)
		args = append(args, like, like, like)
	}
	if q.Category != "" {
		where = append(where, `category = ?`)
		args = append(args, string(q.Category))
	}
	if q.Collection != "" {
		where = append(where, `EXISTS (SELECT 1 FROM json_each(notes.collections) WHERE json_each.value = ?)`)
		args = append(args, q.Collection)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := `SELECT id, category, title, path, tags, collections FROM notes`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY category, id LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                  Entry
			category           string
			tagsJSON, collJSON string
		)
		if err := rows.Scan(&e.ID, &category, &e.Title, &e.Path, &tagsJSON, &collJSON); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		e.Category = types.Category(category)
		_ = json.Unmarshal([]byte(tagsJSON), &e.Tags)
		_ = json.Unmarshal([]byte(collJSON), &e.Collections)
		out = append(out, e)
	}
	return out, rows.Err()
}

// LastRun returns the most recent recorded run. ok is false when the
// catalog has never been built.
func (s *Store) LastRun(ctx context.Context) (run Run, ok bool, err error) {
	var startedAt string
	err = s.db.QueryRowContext(ctx,
		`SELECT id, started_at, library_path, written, failed FROM runs ORDER BY started_at DESC, rowid DESC LIMIT 1`,
	).Scan(&run.ID, &startedAt, &run.LibraryPath, &run.Written, &run.Failed)
	if err == sql.ErrNoRows {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, fmt.Errorf("reading last run: %w", err)
	}
	run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	return run, true, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

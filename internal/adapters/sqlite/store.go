// Package sqlite implements the edit persistence sink on a local SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"reelcut/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.EditStore on SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

var _ ports.EditStore = (*Store)(nil)

// Open creates the database file (and its directory) if needed and
// prepares the schema.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Pragmas + schema in a single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS edits (
			id TEXT PRIMARY KEY,
			video_id TEXT NOT NULL,
			title TEXT NOT NULL,
			project TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_edits_video ON edits(video_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT INTO meta (key, value) VALUES ('schema_version', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		schemaVersion,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Upsert writes the record, replacing any existing row with the same id.
// Last write wins; there is no read-modify-write contract.
func (s *Store) Upsert(ctx context.Context, rec ports.EditRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO edits (id, video_id, title, project, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			video_id = excluded.video_id,
			title = excluded.title,
			project = excluded.project,
			updated_at = excluded.updated_at`,
		rec.ID, rec.VideoID, rec.Title, string(rec.Project), rec.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert edit %s: %w", rec.ID, err)
	}
	return nil
}

// Get returns the record with the given id, or nil if absent
func (s *Store) Get(ctx context.Context, id string) (*ports.EditRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, video_id, title, project, updated_at FROM edits WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load edit %s: %w", id, err)
	}
	return rec, nil
}

// List returns all records, most recently updated first
func (s *Store) List(ctx context.Context) ([]ports.EditRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, video_id, title, project, updated_at FROM edits ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list edits: %w", err)
	}
	defer rows.Close()

	var recs []ports.EditRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edit: %w", err)
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

// Delete removes the record; absent ids are not an error
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM edits WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete edit %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*ports.EditRecord, error) {
	var rec ports.EditRecord
	var project string
	var updatedAt int64
	if err := row.Scan(&rec.ID, &rec.VideoID, &rec.Title, &project, &updatedAt); err != nil {
		return nil, err
	}
	rec.Project = json.RawMessage(project)
	rec.UpdatedAt = time.Unix(updatedAt, 0)
	return &rec, nil
}

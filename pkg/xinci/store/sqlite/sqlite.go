// Package sqlite implements the discovery archive on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cognicore/xinci/pkg/xinci/store"
)

// sqliteStore implements store.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite archive with WAL mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	root TEXT NOT NULL,
	started_at TEXT NOT NULL,
	files INTEGER NOT NULL DEFAULT 0,
	terms_found INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS terms (
	surface TEXT PRIMARY KEY,
	count INTEGER NOT NULL,
	cohesion REAL NOT NULL,
	freedom REAL NOT NULL,
	run_id TEXT NOT NULL,
	FOREIGN KEY(run_id) REFERENCES runs(id)
);

CREATE INDEX IF NOT EXISTS idx_terms_count ON terms(count DESC);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// SaveRun implements store.Store.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO runs (id, root, started_at, files, terms_found)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	root = excluded.root,
	started_at = excluded.started_at,
	files = excluded.files,
	terms_found = excluded.terms_found`,
		r.ID, r.Root, r.StartedAt.UTC().Format("2006-01-02T15:04:05Z"), r.Files, r.TermsFound)
	if err != nil {
		return fmt.Errorf("save run %s: %w", r.ID, err)
	}
	return nil
}

// AddTerms implements store.Store. The upsert keeps the higher count per
// surface form, the same rule the batch aggregate uses.
func (s *sqliteStore) AddTerms(ctx context.Context, runID string, terms []store.Term) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO terms (surface, count, cohesion, freedom, run_id)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(surface) DO UPDATE SET
	count = excluded.count,
	cohesion = excluded.cohesion,
	freedom = excluded.freedom,
	run_id = excluded.run_id
WHERE excluded.count > terms.count`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range terms {
		if _, err := stmt.ExecContext(ctx, t.Surface, t.Count, t.Cohesion, t.Freedom, runID); err != nil {
			return fmt.Errorf("upsert term %s: %w", t.Surface, err)
		}
	}

	return tx.Commit()
}

// TopTerms implements store.Store.
func (s *sqliteStore) TopTerms(ctx context.Context, limit int) ([]store.Term, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT surface, count, cohesion, freedom
FROM terms
ORDER BY count DESC, surface ASC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Term
	for rows.Next() {
		var t store.Term
		if err := rows.Scan(&t.Surface, &t.Count, &t.Cohesion, &t.Freedom); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

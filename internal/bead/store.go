package bead

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// schema contains the DDL executed on open. Using IF NOT EXISTS makes it
// safe to run against an existing issue database.
const schema = `
CREATE TABLE IF NOT EXISTS beads (
    id       TEXT PRIMARY KEY,
    title    TEXT NOT NULL DEFAULT '',
    status   TEXT NOT NULL DEFAULT 'open',
    priority INTEGER NOT NULL DEFAULT 0,
    duration INTEGER,
    position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS dependencies (
    bead_id    TEXT NOT NULL,
    blocker_id TEXT NOT NULL,
    PRIMARY KEY (bead_id, blocker_id)
);
`

// Store reads bead snapshots out of a local beads issue database. It is an
// input adapter: analysis results are never written back, and no graph
// state survives between invocations.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) a SQLite issue database at dbPath and
// ensures the snapshot tables exist.
func OpenStore(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// SQLite only supports a single writer; one connection avoids
	// SQLITE_BUSY contention between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Load returns the full bead snapshot in stored position order. Both edge
// directions are reconstructed from the dependencies table: a row
// (bead, blocker) yields blocker in bead.blocked_by and bead in
// blocker.blocks.
func (s *Store) Load(ctx context.Context) ([]Bead, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, status, priority, duration FROM beads ORDER BY position, id")
	if err != nil {
		return nil, fmt.Errorf("store: query beads: %w", err)
	}
	defer rows.Close()

	var beads []Bead
	index := make(map[string]int)
	for rows.Next() {
		var b Bead
		var duration sql.NullInt64
		if err := rows.Scan(&b.ID, &b.Title, &b.Status, &b.Priority, &duration); err != nil {
			return nil, fmt.Errorf("store: scan bead: %w", err)
		}
		if duration.Valid {
			d := int(duration.Int64)
			b.Duration = &d
		}
		b.BlockedBy = []string{}
		b.Blocks = []string{}
		index[b.ID] = len(beads)
		beads = append(beads, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate beads: %w", err)
	}

	deps, err := s.db.QueryContext(ctx,
		"SELECT bead_id, blocker_id FROM dependencies ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("store: query dependencies: %w", err)
	}
	defer deps.Close()

	for deps.Next() {
		var beadID, blockerID string
		if err := deps.Scan(&beadID, &blockerID); err != nil {
			return nil, fmt.Errorf("store: scan dependency: %w", err)
		}
		if i, ok := index[beadID]; ok {
			beads[i].BlockedBy = append(beads[i].BlockedBy, blockerID)
		}
		if i, ok := index[blockerID]; ok {
			beads[i].Blocks = append(beads[i].Blocks, beadID)
		}
	}
	if err := deps.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate dependencies: %w", err)
	}

	return beads, nil
}

// Import replaces the stored snapshot with the given beads, preserving
// their input order. Dependency rows are written from each bead's
// blocked_by list only; the blocks side is reconstructed on Load.
func (s *Store) Import(ctx context.Context, beads []Bead) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM beads"); err != nil {
		return fmt.Errorf("store: clear beads: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM dependencies"); err != nil {
		return fmt.Errorf("store: clear dependencies: %w", err)
	}

	insBead, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO beads (id, title, status, priority, duration, position) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("store: prepare bead insert: %w", err)
	}
	defer insBead.Close()

	insDep, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO dependencies (bead_id, blocker_id) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("store: prepare dependency insert: %w", err)
	}
	defer insDep.Close()

	for pos, b := range beads {
		var duration any
		if b.Duration != nil {
			duration = *b.Duration
		}
		if _, err := insBead.ExecContext(ctx, b.ID, b.Title, b.Status, b.Priority, duration, pos); err != nil {
			return fmt.Errorf("store: insert bead %q: %w", b.ID, err)
		}
		for _, blocker := range b.BlockedBy {
			if _, err := insDep.ExecContext(ctx, b.ID, blocker); err != nil {
				return fmt.Errorf("store: insert dependency %q -> %q: %w", blocker, b.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit import: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

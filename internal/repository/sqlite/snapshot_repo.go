// Package sqlite persists whole-state snapshots in a local embedded SQLite
// file, one JSON document per logical collection. Every save rewrites each
// collection in full, so the file always holds one consistent state and
// never a partially applied mutation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/glauberagbaiye-droid/teamflow-agency/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	name       TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// Logical snapshot names. One row per collection, plus the profile and the
// session pointer.
const (
	snapArtists       = "artists"
	snapEvents        = "events"
	snapNotifications = "notifications"
	snapProfile       = "agency_profile"
	snapSession       = "session"
)

// Open opens (or creates) the snapshot database at path and ensures the
// schema exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}
	return db, nil
}

type snapshotRepository struct {
	DB *sql.DB
}

// NewSnapshotRepository returns a SnapshotRepository backed by db.
func NewSnapshotRepository(db *sql.DB) domain.SnapshotRepository {
	return &snapshotRepository{DB: db}
}

// Save writes every snapshot row inside one transaction, so a failed write
// leaves the previously committed state intact.
func (r *snapshotRepository) Save(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return domain.ErrInvalidInput
	}
	rows := []struct {
		name string
		body any
	}{
		{snapArtists, snap.Artists},
		{snapEvents, snap.Events},
		{snapNotifications, snap.Notifications},
		{snapProfile, snap.Profile},
		{snapSession, snap.Session},
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot write: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO snapshots (name, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`
	now := time.Now()
	for _, row := range rows {
		body, err := json.Marshal(row.body)
		if err != nil {
			return fmt.Errorf("encode snapshot %s: %w", row.name, err)
		}
		if _, err := tx.ExecContext(ctx, query, row.name, string(body), now); err != nil {
			return fmt.Errorf("write snapshot %s: %w", row.name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot write: %w", err)
	}
	return nil
}

// Load reads all snapshot rows and reassembles the full state. A database
// with no rows yields an empty snapshot, not an error.
func (r *snapshotRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}
	query := `SELECT name, body FROM snapshots`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return snap, nil
		}
		return nil, fmt.Errorf("read snapshots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, body string
		if err := rows.Scan(&name, &body); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		var dest any
		switch name {
		case snapArtists:
			dest = &snap.Artists
		case snapEvents:
			dest = &snap.Events
		case snapNotifications:
			dest = &snap.Notifications
		case snapProfile:
			dest = &snap.Profile
		case snapSession:
			dest = &snap.Session
		default:
			continue
		}
		if err := json.Unmarshal([]byte(body), dest); err != nil {
			return nil, fmt.Errorf("decode snapshot %s: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read snapshots: %w", err)
	}
	return snap, nil
}

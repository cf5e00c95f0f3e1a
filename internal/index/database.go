// Package index persists per-note evaluation results in a SQLite
// database under the vault's .shrike directory, so status queries do
// not have to re-scan the whole vault.
package index

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoteNotFound indicates the requested note path is not in the index.
var ErrNoteNotFound = errors.New("note not found in index")

// Database is the SQLite database handle.
type Database struct {
	db *sql.DB
}

// NoteStatus is one note's most recent evaluation result.
type NoteStatus struct {
	Path        string    `json:"path"`
	Ruleset     string    `json:"ruleset,omitempty"`
	Matches     bool      `json:"matches"`
	Complete    bool      `json:"complete"`
	Missing     []string  `json:"missing,omitempty"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Open opens or creates the index database for a vault.
func Open(vaultPath string) (*Database, error) {
	dbDir := filepath.Join(vaultPath, ".shrike")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create .shrike directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, "index.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) initialize() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS notes (
			path         TEXT PRIMARY KEY,
			ruleset      TEXT NOT NULL DEFAULT '',
			matches      INTEGER NOT NULL DEFAULT 0,
			complete     INTEGER NOT NULL DEFAULT 0,
			missing      TEXT NOT NULL DEFAULT '[]',
			evaluated_at INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

// Upsert records the evaluation result for one note.
func (d *Database) Upsert(status NoteStatus) error {
	missing, err := json.Marshal(status.Missing)
	if err != nil {
		return fmt.Errorf("failed to encode missing fields: %w", err)
	}

	_, err = d.db.Exec(`
		INSERT INTO notes (path, ruleset, matches, complete, missing, evaluated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			ruleset = excluded.ruleset,
			matches = excluded.matches,
			complete = excluded.complete,
			missing = excluded.missing,
			evaluated_at = excluded.evaluated_at
	`, status.Path, status.Ruleset, status.Matches, status.Complete, string(missing), status.EvaluatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert note %q: %w", status.Path, err)
	}
	return nil
}

// Get returns the recorded status for one note path.
func (d *Database) Get(path string) (NoteStatus, error) {
	row := d.db.QueryRow(`
		SELECT path, ruleset, matches, complete, missing, evaluated_at
		FROM notes WHERE path = ?
	`, path)

	status, err := scanStatus(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return NoteStatus{}, ErrNoteNotFound
	}
	return status, err
}

// All returns every recorded status ordered by path.
func (d *Database) All() ([]NoteStatus, error) {
	rows, err := d.db.Query(`
		SELECT path, ruleset, matches, complete, missing, evaluated_at
		FROM notes ORDER BY path
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var out []NoteStatus
	for rows.Next() {
		status, err := scanStatus(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, status)
	}
	return out, rows.Err()
}

// Rebuild replaces the whole index with statuses in one transaction.
func (d *Database) Rebuild(statuses []NoteStatus) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO notes (path, ruleset, matches, complete, missing, evaluated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, status := range statuses {
		missing, err := json.Marshal(status.Missing)
		if err != nil {
			return fmt.Errorf("failed to encode missing fields: %w", err)
		}
		if _, err := stmt.Exec(status.Path, status.Ruleset, status.Matches, status.Complete, string(missing), status.EvaluatedAt.Unix()); err != nil {
			return fmt.Errorf("failed to insert note %q: %w", status.Path, err)
		}
	}

	return tx.Commit()
}

// Delete removes a note from the index. Deleting an absent path is not
// an error.
func (d *Database) Delete(path string) error {
	_, err := d.db.Exec(`DELETE FROM notes WHERE path = ?`, path)
	return err
}

func scanStatus(scan func(dest ...any) error) (NoteStatus, error) {
	var (
		status      NoteStatus
		missing     string
		evaluatedAt int64
	)
	if err := scan(&status.Path, &status.Ruleset, &status.Matches, &status.Complete, &missing, &evaluatedAt); err != nil {
		return NoteStatus{}, err
	}
	if err := json.Unmarshal([]byte(missing), &status.Missing); err != nil {
		return NoteStatus{}, fmt.Errorf("failed to decode missing fields for %q: %w", status.Path, err)
	}
	status.EvaluatedAt = time.Unix(evaluatedAt, 0).UTC()
	return status, nil
}

// Package store persists the shell's command worklog in a local SQLite
// database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a handle on the worklog directory. The zero Dir resolves to
// ~/.linesh.
type Store struct {
	Dir string
}

// Entry is one executed command line.
type Entry struct {
	ID         int64     `json:"id"`
	Line       string    `json:"line"`
	Argv       []string  `json:"argv"`
	ExitCode   int       `json:"exitCode"`
	StartedAt  time.Time `json:"startedAt"`
	DurationMS int64     `json:"durationMs"`
}

// Enabled reports whether worklog persistence is on. Opt out with
// LINESH_WORKLOG=off.
func Enabled() bool {
	return strings.TrimSpace(os.Getenv("LINESH_WORKLOG")) != "off"
}

// DefaultDir is the per-user worklog directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".linesh"
	}
	return filepath.Join(home, ".linesh")
}

func (s Store) dir() string {
	if strings.TrimSpace(s.Dir) != "" {
		return s.Dir
	}
	return DefaultDir()
}

func (s Store) path() string {
	return filepath.Join(s.dir(), "worklog.sqlite")
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(s.dir(), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.path())
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage: WAL enables one writer + many
	// readers; busy_timeout avoids "database is locked" flakiness when two
	// shells share the log.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := s.migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (s Store) migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS worklog (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			line TEXT NOT NULL,
			argv_json TEXT NOT NULL,
			exit_code INTEGER NOT NULL,
			started_at_unixms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS worklog_started_at ON worklog(started_at_unixms);`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Append records one executed command.
func (s Store) Append(ctx context.Context, e Entry) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	argv, err := json.Marshal(e.Argv)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO worklog (line, argv_json, exit_code, started_at_unixms, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Line, string(argv), e.ExitCode, e.StartedAt.UnixMilli(), e.DurationMS)
	return err
}

// List returns the most recent entries, newest first. limit <= 0 means all.
func (s Store) List(ctx context.Context, limit int) ([]Entry, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, line, argv_json, exit_code, started_at_unixms, duration_ms
	      FROM worklog ORDER BY started_at_unixms DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var argvJSON string
		var startedMS int64
		if err := rows.Scan(&e.ID, &e.Line, &argvJSON, &e.ExitCode, &startedMS, &e.DurationMS); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(argvJSON), &e.Argv); err != nil {
			return nil, err
		}
		e.StartedAt = time.UnixMilli(startedMS).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear removes all worklog entries.
func (s Store) Clear(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM worklog`)
	return err
}

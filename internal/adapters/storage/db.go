package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the subset of *sql.DB the stores use. Kept as an interface so
// tests can substitute an instrumented or failing connection.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DSN builds the sqlite connection string with WAL mode, foreign keys, and a
// busy timeout.
func DSN(path string) string {
	return path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
}

// InitDB creates the two log tables. Both are keyed upsert logs: one row per
// code (views) and one row per member (responses); rows are never deleted.
// PRE: db is a valid database connection
// POST: Tables exist
func InitDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS view_entry (
		code TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		first_name TEXT NOT NULL,
		view_count INTEGER NOT NULL DEFAULT 1,
		last_viewed_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS response_entry (
		member_id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		biggest_win TEXT NOT NULL DEFAULT '',
		intention TEXT NOT NULL DEFAULT '',
		submitted_at TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

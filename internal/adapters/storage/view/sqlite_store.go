package view

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wrapped/internal/adapters/storage"
	domain "wrapped/internal/domain/view"
)

// SQLiteStore implements Store using SQLite. One row per code; Save is a
// true upsert via ON CONFLICT.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new view store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the entry for a code.
// PRE: code is non-empty
// POST: Returns the entry and true, or false when no row exists
func (s *SQLiteStore) Get(ctx context.Context, code string) (domain.Entry, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT code, member_id, first_name, view_count, last_viewed_at FROM view_entry WHERE code = ?", code)
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Entry{}, false, nil
	}
	if err != nil {
		return domain.Entry{}, false, fmt.Errorf("get view entry: %w", err)
	}
	return entry, true, nil
}

// Save persists an entry (insert or full replace of the row).
// PRE: entry has been validated
// POST: Row for entry.Code matches entry
func (s *SQLiteStore) Save(ctx context.Context, entry domain.Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO view_entry (code, member_id, first_name, view_count, last_viewed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			member_id=excluded.member_id,
			first_name=excluded.first_name,
			view_count=excluded.view_count,
			last_viewed_at=excluded.last_viewed_at`,
		entry.Code, entry.MemberID, entry.FirstName, entry.ViewCount,
		entry.Timestamp.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save view entry: %w", err)
	}
	return nil
}

// List retrieves all entries, unordered.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT code, member_id, first_name, view_count, last_viewed_at FROM view_entry")
	if err != nil {
		return nil, fmt.Errorf("list view entries: %w", err)
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan view entry: %w", err)
		}
		results = append(results, entry)
	}
	return results, rows.Err()
}

func scanEntry(scan func(dest ...any) error) (domain.Entry, error) {
	var entry domain.Entry
	var ts string
	if err := scan(&entry.Code, &entry.MemberID, &entry.FirstName, &entry.ViewCount, &ts); err != nil {
		return domain.Entry{}, err
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("parse last_viewed_at: %w", err)
	}
	entry.Timestamp = parsed
	return entry, nil
}

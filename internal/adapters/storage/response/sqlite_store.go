package response

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wrapped/internal/adapters/storage"
	domain "wrapped/internal/domain/response"
)

// SQLiteStore implements Store using SQLite. One row per member; Save is a
// true upsert via ON CONFLICT.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new response store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves the response for a member.
// POST: Returns the entry and true, or false when no row exists
func (s *SQLiteStore) Get(ctx context.Context, memberID int) (domain.Entry, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT member_id, first_name, biggest_win, intention, submitted_at FROM response_entry WHERE member_id = ?", memberID)
	entry, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Entry{}, false, nil
	}
	if err != nil {
		return domain.Entry{}, false, fmt.Errorf("get response entry: %w", err)
	}
	return entry, true, nil
}

// Save persists a response (insert or full replace of the row).
// PRE: entry has been validated
// POST: Row for entry.MemberID matches entry, including cleared fields
func (s *SQLiteStore) Save(ctx context.Context, entry domain.Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO response_entry (member_id, first_name, biggest_win, intention, submitted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(member_id) DO UPDATE SET
			first_name=excluded.first_name,
			biggest_win=excluded.biggest_win,
			intention=excluded.intention,
			submitted_at=excluded.submitted_at`,
		entry.MemberID, entry.FirstName, entry.BiggestWin2025, entry.Intention2026,
		entry.Timestamp.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save response entry: %w", err)
	}
	return nil
}

// List retrieves all responses, unordered.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT member_id, first_name, biggest_win, intention, submitted_at FROM response_entry")
	if err != nil {
		return nil, fmt.Errorf("list response entries: %w", err)
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan response entry: %w", err)
		}
		results = append(results, entry)
	}
	return results, rows.Err()
}

func scanEntry(scan func(dest ...any) error) (domain.Entry, error) {
	var entry domain.Entry
	var ts string
	if err := scan(&entry.MemberID, &entry.FirstName, &entry.BiggestWin2025, &entry.Intention2026, &ts); err != nil {
		return domain.Entry{}, err
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("parse submitted_at: %w", err)
	}
	entry.Timestamp = parsed
	return entry, nil
}

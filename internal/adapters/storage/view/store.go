package view

import (
	"context"

	domain "wrapped/internal/domain/view"
)

// Store persists view log entries, keyed by code.
//
// Callers upsert with a Get-then-Save read-modify-write. None of the
// implementations serialize that sequence across callers, so two
// near-simultaneous views of the same code can lose an increment. That is an
// accepted failure mode for this informational counter, not a guarantee to
// rely on — do not treat the counter as billing-grade.
type Store interface {
	// Get returns the entry for code and whether one exists.
	Get(ctx context.Context, code string) (domain.Entry, bool, error)
	// Save inserts or replaces the entry for its code.
	Save(ctx context.Context, entry domain.Entry) error
	// List returns all entries, unordered.
	List(ctx context.Context) ([]domain.Entry, error)
}

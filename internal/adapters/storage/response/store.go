package response

import (
	"context"

	domain "wrapped/internal/domain/response"
)

// Store persists feedback responses, keyed by member ID. A member has at
// most one response; saving again replaces the previous one in full.
type Store interface {
	// Get returns the response for memberID and whether one exists.
	Get(ctx context.Context, memberID int) (domain.Entry, bool, error)
	// Save inserts or replaces the response for its member.
	Save(ctx context.Context, entry domain.Entry) error
	// List returns all responses, unordered.
	List(ctx context.Context) ([]domain.Entry, error)
}

package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	viewStore "wrapped/internal/adapters/storage/view"
	domain "wrapped/internal/domain/view"
)

// RecordViewCommand holds the input for logging one view of a code.
// PRE: Code, MemberID and FirstName are non-empty.
// POST: The view log holds exactly one entry for the code, count incremented.
type RecordViewCommand struct {
	Code      string
	MemberID  string
	FirstName string
}

// RecordViewResult holds the entry as stored, including the new count.
type RecordViewResult struct {
	Entry domain.Entry
}

// RecordViewDeps are the external dependencies for this orchestrator.
type RecordViewDeps struct {
	ViewStore viewStore.Store
	Now       func() time.Time // injectable for tests; defaults to time.Now
}

// ExecuteRecordView upserts a view log entry: the first view of a code
// creates the entry with count 1, every later view increments the count in
// place and refreshes name, member id and timestamp.
// PRE: cmd fields are non-empty after trimming
// POST: Store holds one entry for the code; returns it with the new count
func ExecuteRecordView(ctx context.Context, cmd RecordViewCommand, deps RecordViewDeps) (RecordViewResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	code := strings.ToUpper(strings.TrimSpace(cmd.Code))

	entry, _, err := deps.ViewStore.Get(ctx, code)
	if err != nil {
		slog.Error("view_load_failed", "error", err.Error(), "code", code)
		return RecordViewResult{}, fmt.Errorf("load view entry: %w", err)
	}
	entry.Code = code
	entry.Touch(strings.TrimSpace(cmd.MemberID), strings.TrimSpace(cmd.FirstName), now().UTC())

	if err := entry.Validate(); err != nil {
		return RecordViewResult{}, fmt.Errorf("validation: %w", err)
	}
	if err := deps.ViewStore.Save(ctx, entry); err != nil {
		slog.Error("view_save_failed", "error", err.Error(), "code", code)
		return RecordViewResult{}, fmt.Errorf("save view entry: %w", err)
	}

	slog.Info("view_recorded", "code", code, "view_count", entry.ViewCount)
	return RecordViewResult{Entry: entry}, nil
}

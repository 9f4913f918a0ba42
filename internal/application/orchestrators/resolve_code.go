package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"wrapped/internal/adapters/dataset"
	viewStore "wrapped/internal/adapters/storage/view"
	"wrapped/internal/domain/record"
)

// ResolveCodeCommand holds the raw user-entered access code.
type ResolveCodeCommand struct {
	Code string
}

// ResolveCodeResult holds the resolved record.
type ResolveCodeResult struct {
	Record record.AccessRecord
}

// ResolveCodeDeps are the external dependencies for this orchestrator.
type ResolveCodeDeps struct {
	Catalog   *dataset.Catalog
	ViewStore viewStore.Store
	Now       func() time.Time
}

// ExecuteResolveCode looks the code up in the catalog and, on a hit, logs
// the view as a side effect. The view log is informational: a logging
// failure is reported but never fails the resolution, and a failed
// resolution never creates a log entry.
// PRE: cmd.Code may be any user input
// POST: Returns the tagged record, dataset.ErrCodeTooShort, or
// dataset.ErrNotFound; on success the view log was given one upsert attempt
func ExecuteResolveCode(ctx context.Context, cmd ResolveCodeCommand, deps ResolveCodeDeps) (ResolveCodeResult, error) {
	rec, err := deps.Catalog.Resolve(cmd.Code)
	if err != nil {
		return ResolveCodeResult{}, err
	}

	code := rec.Code()
	if _, err := ExecuteRecordView(ctx, RecordViewCommand{
		Code:      code,
		MemberID:  rec.ViewerID(),
		FirstName: rec.ViewerName(),
	}, RecordViewDeps{ViewStore: deps.ViewStore, Now: deps.Now}); err != nil {
		slog.Warn("resolve_view_log_failed", "error", err.Error(), "code", code)
	}

	slog.Info("code_resolved", "code", code, "kind", rec.Kind)
	return ResolveCodeResult{Record: rec}, nil
}

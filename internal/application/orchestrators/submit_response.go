package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"wrapped/internal/adapters/email"
	responseStore "wrapped/internal/adapters/storage/response"
	domain "wrapped/internal/domain/response"
)

// SubmitResponseCommand holds one feedback submission.
// PRE: MemberID > 0 and FirstName non-empty; text fields may be empty.
// POST: The response store holds exactly one entry for the member.
type SubmitResponseCommand struct {
	MemberID       int
	FirstName      string
	Intention2026  string
	BiggestWin2025 string
}

// SubmitResponseResult holds the entry as stored.
type SubmitResponseResult struct {
	Entry domain.Entry
}

// SubmitResponseDeps are the external dependencies for this orchestrator.
type SubmitResponseDeps struct {
	ResponseStore responseStore.Store
	EmailSender   email.Sender // nil disables the notification
	NotifyTo      string       // recipient for the notification email
	Now           func() time.Time
}

// ExecuteSubmitResponse validates and persists a feedback submission. A
// resubmission replaces the member's earlier answer wholesale: fields left
// empty this time end up empty in the store, not merged from the old entry.
// When a sender is configured, the gym gets a best-effort notification email
// after the save; a send failure is logged and never fails the submission.
// PRE: cmd.MemberID > 0, cmd.FirstName non-empty after trimming
// POST: Store holds one entry for the member matching cmd exactly
func ExecuteSubmitResponse(ctx context.Context, cmd SubmitResponseCommand, deps SubmitResponseDeps) (SubmitResponseResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	entry := domain.Entry{
		MemberID:       cmd.MemberID,
		FirstName:      strings.TrimSpace(cmd.FirstName),
		Intention2026:  strings.TrimSpace(cmd.Intention2026),
		BiggestWin2025: strings.TrimSpace(cmd.BiggestWin2025),
		Timestamp:      now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return SubmitResponseResult{}, fmt.Errorf("validation: %w", err)
	}

	if err := deps.ResponseStore.Save(ctx, entry); err != nil {
		slog.Error("response_save_failed", "error", err.Error(), "member_id", entry.MemberID)
		return SubmitResponseResult{}, fmt.Errorf("save response: %w", err)
	}
	slog.Info("response_submitted", "member_id", entry.MemberID,
		"has_win", entry.HasWin(), "has_intention", entry.HasIntention())

	if deps.EmailSender != nil && deps.NotifyTo != "" {
		if _, err := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{deps.NotifyTo},
			Subject: fmt.Sprintf("Wrapped feedback van %s", entry.FirstName),
			HTML:    notificationBody(entry),
		}); err != nil {
			slog.Warn("response_notify_failed", "error", err.Error(), "member_id", entry.MemberID)
		}
	}

	return SubmitResponseResult{Entry: entry}, nil
}

func notificationBody(entry domain.Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<p><strong>%s</strong> (lid %d) liet een reactie achter.</p>",
		html.EscapeString(entry.FirstName), entry.MemberID))
	if entry.HasWin() {
		sb.WriteString(fmt.Sprintf("<p>Grootste win 2025: %s</p>", html.EscapeString(entry.BiggestWin2025)))
	}
	if entry.HasIntention() {
		sb.WriteString(fmt.Sprintf("<p>Voornemen 2026: %s</p>", html.EscapeString(entry.Intention2026)))
	}
	return sb.String()
}

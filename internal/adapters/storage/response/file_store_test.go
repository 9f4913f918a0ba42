package response

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	domain "wrapped/internal/domain/response"
)

var testTime = time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

// TestFileStore_ReplaceAndReload tests that a resubmission replaces the row
// wholesale and that the file survives a reopen.
func TestFileStore_ReplaceAndReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "responses.json")

	store := NewFileStore(path)
	if err := store.Save(ctx, domain.Entry{
		MemberID:       7,
		FirstName:      "Kim",
		Intention2026:  "3x per week",
		BiggestWin2025: "Muscle-up",
		Timestamp:      testTime,
	}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, domain.Entry{
		MemberID:       7,
		FirstName:      "Kim",
		BiggestWin2025: "100kg deadlift",
		Timestamp:      testTime,
	}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	reopened := NewFileStore(path)
	entry, found, err := reopened.Get(ctx, 7)
	if err != nil || !found {
		t.Fatalf("get after reopen: found=%v err=%v", found, err)
	}
	if entry.BiggestWin2025 != "100kg deadlift" {
		t.Errorf("expected replaced win, got %q", entry.BiggestWin2025)
	}
	if entry.Intention2026 != "" {
		t.Errorf("omitted field must be cleared, got %q", entry.Intention2026)
	}

	all, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected one entry per member, got %d", len(all))
	}
}

// TestMemoryStore_KeyedByMember tests that entries for different members
// coexist while same-member saves replace.
func TestMemoryStore_KeyedByMember(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.Save(ctx, domain.Entry{MemberID: 7, FirstName: "Kim", Timestamp: testTime})
	store.Save(ctx, domain.Entry{MemberID: 8, FirstName: "Daan", Timestamp: testTime})
	store.Save(ctx, domain.Entry{MemberID: 7, FirstName: "Kim", BiggestWin2025: "PR", Timestamp: testTime})

	all, _ := store.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
	entry, found, _ := store.Get(ctx, 7)
	if !found || entry.BiggestWin2025 != "PR" {
		t.Errorf("expected replaced entry for member 7, got %+v", entry)
	}
}

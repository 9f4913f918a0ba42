package view

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	domain "wrapped/internal/domain/view"
)

var testTime = time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

func testEntry(code string, count int) domain.Entry {
	return domain.Entry{
		Code:      code,
		MemberID:  "101",
		FirstName: "Kim",
		ViewCount: count,
		Timestamp: testTime,
	}
}

// TestFileStore_RoundTrip tests save, upsert and reload from disk.
func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "views.json")

	store := NewFileStore(path)
	if _, found, err := store.Get(ctx, "AB12"); err != nil || found {
		t.Fatalf("empty store: found=%v err=%v", found, err)
	}

	if err := store.Save(ctx, testEntry("AB12", 1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, testEntry("CD34", 1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, testEntry("AB12", 2)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// A fresh store on the same path must see the persisted state.
	reopened := NewFileStore(path)
	entry, found, err := reopened.Get(ctx, "AB12")
	if err != nil || !found {
		t.Fatalf("get after reopen: found=%v err=%v", found, err)
	}
	if entry.ViewCount != 2 {
		t.Errorf("expected viewCount=2 after upsert, got %d", entry.ViewCount)
	}
	if !entry.Timestamp.Equal(testTime) {
		t.Errorf("timestamp lost in round trip: %v", entry.Timestamp)
	}

	all, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 entries, got %d", len(all))
	}
}

// TestMemoryStore_Upsert tests in-memory upsert semantics.
func TestMemoryStore_Upsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Save(ctx, testEntry("AB12", 1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, testEntry("AB12", 2)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	entry, found, err := store.Get(ctx, "AB12")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if entry.ViewCount != 2 {
		t.Errorf("expected viewCount=2, got %d", entry.ViewCount)
	}

	all, _ := store.List(ctx)
	if len(all) != 1 {
		t.Errorf("expected one entry, got %d", len(all))
	}
}

package orchestrators

import (
	"context"
	"errors"
	"testing"

	"wrapped/internal/adapters/email"
	domainResponse "wrapped/internal/domain/response"
)

// mockResponseStore implements response.Store for testing.
type mockResponseStore struct {
	entries map[int]domainResponse.Entry
	failSet bool
}

func newMockResponseStore() *mockResponseStore {
	return &mockResponseStore{entries: make(map[int]domainResponse.Entry)}
}

func (m *mockResponseStore) Get(_ context.Context, memberID int) (domainResponse.Entry, bool, error) {
	e, ok := m.entries[memberID]
	return e, ok, nil
}

func (m *mockResponseStore) Save(_ context.Context, e domainResponse.Entry) error {
	if m.failSet {
		return errors.New("store down")
	}
	m.entries[e.MemberID] = e
	return nil
}

func (m *mockResponseStore) List(_ context.Context) ([]domainResponse.Entry, error) {
	var out []domainResponse.Entry
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

// mockSender records sent emails and can be told to fail.
type mockSender struct {
	sent []email.SendRequest
	fail bool
}

func (m *mockSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.fail {
		return email.SendResult{}, errors.New("provider down")
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "msg-1"}, nil
}

// TestExecuteSubmitResponse_Valid tests a full submission round trip.
func TestExecuteSubmitResponse_Valid(t *testing.T) {
	store := newMockResponseStore()
	result, err := ExecuteSubmitResponse(context.Background(), SubmitResponseCommand{
		MemberID:       7,
		FirstName:      "Kim",
		Intention2026:  "3x per week trainen",
		BiggestWin2025: "Eerste muscle-up",
	}, SubmitResponseDeps{ResponseStore: store, Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Entry.Timestamp.Equal(fixedTime) {
		t.Errorf("expected fixed timestamp, got %v", result.Entry.Timestamp)
	}
	stored := store.entries[7]
	if stored.BiggestWin2025 != "Eerste muscle-up" || stored.Intention2026 != "3x per week trainen" {
		t.Errorf("unexpected stored entry: %+v", stored)
	}
}

// TestExecuteSubmitResponse_ReplacesWholesale tests that a resubmission
// replaces the previous entry in full, clearing omitted fields.
func TestExecuteSubmitResponse_ReplacesWholesale(t *testing.T) {
	store := newMockResponseStore()
	first := SubmitResponseCommand{
		MemberID:       7,
		FirstName:      "Kim",
		Intention2026:  "3x per week trainen",
		BiggestWin2025: "Eerste muscle-up",
	}
	if _, err := ExecuteSubmitResponse(context.Background(), first,
		SubmitResponseDeps{ResponseStore: store, Now: fixedNow}); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second := SubmitResponseCommand{
		MemberID:       7,
		FirstName:      "Kim",
		BiggestWin2025: "100kg deadlift",
	}
	if _, err := ExecuteSubmitResponse(context.Background(), second,
		SubmitResponseDeps{ResponseStore: store, Now: fixedNow}); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if len(store.entries) != 1 {
		t.Fatalf("expected one entry per member, got %d", len(store.entries))
	}
	stored := store.entries[7]
	if stored.BiggestWin2025 != "100kg deadlift" {
		t.Errorf("expected replaced win, got %q", stored.BiggestWin2025)
	}
	if stored.Intention2026 != "" {
		t.Errorf("omitted intention must be cleared, got %q", stored.Intention2026)
	}
}

// TestExecuteSubmitResponse_Validation tests the required-field checks.
func TestExecuteSubmitResponse_Validation(t *testing.T) {
	store := newMockResponseStore()
	cases := []SubmitResponseCommand{
		{FirstName: "Kim"},             // missing member id
		{MemberID: 7},                  // missing name
		{MemberID: 7, FirstName: "  "}, // blank name
	}
	for i, cmd := range cases {
		if _, err := ExecuteSubmitResponse(context.Background(), cmd,
			SubmitResponseDeps{ResponseStore: store, Now: fixedNow}); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
	if len(store.entries) != 0 {
		t.Error("invalid commands must not persist anything")
	}
}

// TestExecuteSubmitResponse_Notification tests the best-effort email.
func TestExecuteSubmitResponse_Notification(t *testing.T) {
	store := newMockResponseStore()
	sender := &mockSender{}
	if _, err := ExecuteSubmitResponse(context.Background(), SubmitResponseCommand{
		MemberID:       7,
		FirstName:      "Kim",
		BiggestWin2025: "Eerste muscle-up",
	}, SubmitResponseDeps{
		ResponseStore: store,
		EmailSender:   sender,
		NotifyTo:      "info@example.com",
		Now:           fixedNow,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(sender.sent))
	}
	if sender.sent[0].To[0] != "info@example.com" {
		t.Errorf("unexpected recipient: %v", sender.sent[0].To)
	}
}

// TestExecuteSubmitResponse_NotificationFailureIsSwallowed tests that a
// failing provider never fails the submission.
func TestExecuteSubmitResponse_NotificationFailureIsSwallowed(t *testing.T) {
	store := newMockResponseStore()
	sender := &mockSender{fail: true}
	if _, err := ExecuteSubmitResponse(context.Background(), SubmitResponseCommand{
		MemberID:  7,
		FirstName: "Kim",
	}, SubmitResponseDeps{
		ResponseStore: store,
		EmailSender:   sender,
		NotifyTo:      "info@example.com",
		Now:           fixedNow,
	}); err != nil {
		t.Fatalf("submission must survive a notify failure, got %v", err)
	}
	if len(store.entries) != 1 {
		t.Error("entry must be persisted despite notify failure")
	}
}

// TestExecuteSubmitResponse_StoreFailure tests that save errors propagate.
func TestExecuteSubmitResponse_StoreFailure(t *testing.T) {
	store := newMockResponseStore()
	store.failSet = true
	if _, err := ExecuteSubmitResponse(context.Background(), SubmitResponseCommand{
		MemberID:  7,
		FirstName: "Kim",
	}, SubmitResponseDeps{ResponseStore: store, Now: fixedNow}); err == nil {
		t.Fatal("expected error from failing store")
	}
}

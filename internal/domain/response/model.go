package response

import (
	"errors"
	"strings"
	"time"
)

// Max length for the free-text fields, matching the entry form.
const MaxTextLength = 200

// Domain errors
var (
	ErrMissingMemberID  = errors.New("memberId is required")
	ErrMissingFirstName = errors.New("voornaam is required")
	ErrTextTooLong      = errors.New("text fields cannot exceed 200 characters")
)

// Entry is one member's feedback submission. At most one Entry exists per
// member; a later submission replaces the earlier one wholesale, including
// resetting omitted text fields to "".
type Entry struct {
	MemberID       int       `json:"memberId"`
	FirstName      string    `json:"voornaam"`
	Intention2026  string    `json:"voornemen2026"`
	BiggestWin2025 string    `json:"grootsteWin2025"`
	Timestamp      time.Time `json:"timestamp"`
}

// Validate checks that the Entry carries the required identity fields.
// PRE: Entry struct is initialized, text fields already trimmed
// POST: Returns error if validation fails, nil otherwise
func (e *Entry) Validate() error {
	if e.MemberID == 0 {
		return ErrMissingMemberID
	}
	if strings.TrimSpace(e.FirstName) == "" {
		return ErrMissingFirstName
	}
	if len(e.Intention2026) > MaxTextLength || len(e.BiggestWin2025) > MaxTextLength {
		return ErrTextTooLong
	}
	return nil
}

// HasWin reports whether the entry carries a non-empty "biggest win" text.
func (e *Entry) HasWin() bool {
	return strings.TrimSpace(e.BiggestWin2025) != ""
}

// HasIntention reports whether the entry carries a non-empty 2026 intention.
func (e *Entry) HasIntention() bool {
	return strings.TrimSpace(e.Intention2026) != ""
}

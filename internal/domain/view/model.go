package view

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrMissingCode      = errors.New("code is required")
	ErrMissingMemberID  = errors.New("memberId is required")
	ErrMissingFirstName = errors.New("voornaam is required")
)

// Entry records that a code was viewed. At most one Entry exists per code;
// repeat views increment ViewCount in place and refresh Timestamp.
//
// MemberID is the viewer's registration number, or "0" for coaches, and is
// informational only — Code is the key.
type Entry struct {
	Code      string    `json:"code"`
	MemberID  string    `json:"memberId"`
	FirstName string    `json:"voornaam"`
	ViewCount int       `json:"viewCount"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate checks that the Entry carries all required fields.
// PRE: Entry struct is initialized
// POST: Returns the first missing-field error, nil when valid
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Code) == "" {
		return ErrMissingCode
	}
	if strings.TrimSpace(e.MemberID) == "" {
		return ErrMissingMemberID
	}
	if strings.TrimSpace(e.FirstName) == "" {
		return ErrMissingFirstName
	}
	return nil
}

// Touch applies one view at the given time: first view starts the counter,
// later views increment it. FirstName and MemberID always take the latest
// value (upsert, not merge).
func (e *Entry) Touch(memberID, firstName string, now time.Time) {
	if e.ViewCount == 0 {
		e.ViewCount = 1
	} else {
		e.ViewCount++
	}
	e.MemberID = memberID
	e.FirstName = firstName
	e.Timestamp = now
}

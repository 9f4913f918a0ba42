package slide

import (
	"strings"
	"testing"

	"wrapped/internal/domain/record"
)

func fullMember() record.Member {
	return record.Member{
		RegistrationNumber: 101,
		FirstName:          "Kim",
		Code:               "AB12",
		Visits:             120,
		Cancellations:      8,
		FavoriteCoaches:    "Sanne",
		FavoriteDay:        "maandag",
		TopMonth:           "maart",
		QuietestMonth:      "augustus",
		Percentile:         5,
		Buddy1:             "Daan",
		Buddy1Sessions:     34,
		Buddy2:             "Lisa",
		Buddy2Sessions:     21,
		FavoriteClassType:  "WOD",
		CommunityVisits:    39326,
		HardestDay:         "maandag",
		HardestDayCount:    4,
	}
}

func deckIDs(deck []Descriptor) []string {
	ids := make([]string, len(deck))
	for i, d := range deck {
		ids[i] = d.ID
	}
	return ids
}

func assertOrder(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d slides %v, got %d %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slide %d: expected %s, got %s (full deck %v)", i, want[i], got[i], got)
		}
	}
}

// TestBuildMemberDeck_FullRecord tests the complete fixed slide order when
// every optional slide qualifies.
func TestBuildMemberDeck_FullRecord(t *testing.T) {
	deck := BuildMemberDeck(fullMember(), record.CommunityStats{AvgVisits: 80, AvgCancellations: 11})
	assertOrder(t, deckIDs(deck), []string{
		"intro", "video", "attendance", "rhythm", "coach", "buddies",
		"lestype", "seasons", "cancellations", "moeilijkste",
		"community", "feedback", "outro",
	})
}

// TestBuildMemberDeck_NoBuddies tests that the buddy slide drops out without
// disturbing its neighbours (after coach, before lestype).
func TestBuildMemberDeck_NoBuddies(t *testing.T) {
	m := fullMember()
	m.Buddy1, m.Buddy2, m.Buddy3 = "", "", ""
	deck := BuildMemberDeck(m, record.CommunityStats{})
	assertOrder(t, deckIDs(deck), []string{
		"intro", "video", "attendance", "rhythm", "coach",
		"lestype", "seasons", "cancellations", "moeilijkste",
		"community", "feedback", "outro",
	})
}

// TestBuildMemberDeck_CleanYear tests a record with nothing to confess: no
// cancellations and no hardest-moment data.
func TestBuildMemberDeck_CleanYear(t *testing.T) {
	m := fullMember()
	m.Cancellations = 0
	m.HardestDay = ""
	m.HardestDayCount = 0
	deck := BuildMemberDeck(m, record.CommunityStats{})
	assertOrder(t, deckIDs(deck), []string{
		"intro", "video", "attendance", "rhythm", "coach", "buddies",
		"lestype", "seasons", "community", "feedback", "outro",
	})
}

// TestBuildMemberDeck_AboveAverageAttendance tests the comparison copy on
// the attendance slide.
func TestBuildMemberDeck_AboveAverageAttendance(t *testing.T) {
	deck := BuildMemberDeck(fullMember(), record.CommunityStats{AvgVisits: 80})
	var attendance Descriptor
	for _, d := range deck {
		if d.ID == "attendance" {
			attendance = d
		}
	}
	if attendance.Hero != "120" {
		t.Errorf("expected hero 120, got %q", attendance.Hero)
	}
	if !strings.Contains(attendance.Note, "40 meer dan gemiddeld") {
		t.Errorf("expected above-average note, got %q", attendance.Note)
	}
}

// TestBuildMemberDeck_PluralCoaches tests the coach slide wording switch.
func TestBuildMemberDeck_PluralCoaches(t *testing.T) {
	m := fullMember()
	m.FavoriteCoaches = "Sanne & Piet"
	m.CoachesPlural = true
	deck := BuildMemberDeck(m, record.CommunityStats{PopularCoach: "Anna"})
	for _, d := range deck {
		if d.ID == "coach" {
			if d.Lead != "Je favoriete coaches" {
				t.Errorf("expected plural lead, got %q", d.Lead)
			}
			if d.Footnote != "Populairst: Anna" {
				t.Errorf("expected popular-coach footnote, got %q", d.Footnote)
			}
			return
		}
	}
	t.Fatal("coach slide missing")
}

// TestBuildCoachDeck_Order tests the fixed coach slide order.
func TestBuildCoachDeck_Order(t *testing.T) {
	deck := BuildCoachDeck(record.Coach{FirstName: "Sanne", ClassesGiven: 250})
	assertOrder(t, deckIDs(deck), []string{
		"intro", "lessen", "leden", "timing", "lestype", "drukste", "fans", "outro",
	})
}

// TestBuildCoachDeck_Chronotype tests that the timing footnote only appears
// for a pronounced early-bird or night-owl pattern.
func TestBuildCoachDeck_Chronotype(t *testing.T) {
	timingOf := func(c record.Coach) Descriptor {
		for _, d := range BuildCoachDeck(c) {
			if d.ID == "timing" {
				return d
			}
		}
		t.Fatal("timing slide missing")
		return Descriptor{}
	}

	if d := timingOf(record.Coach{EarlyBirdPercentage: 30, NightOwlPercentage: 30}); d.Footnote != "" {
		t.Errorf("expected no chronotype footnote, got %q", d.Footnote)
	}
	if d := timingOf(record.Coach{EarlyBirdPercentage: 55, NightOwlPercentage: 10}); !strings.Contains(d.Footnote, "Early bird") {
		t.Errorf("expected early-bird footnote, got %q", d.Footnote)
	}
	if d := timingOf(record.Coach{EarlyBirdPercentage: 10, NightOwlPercentage: 62}); !strings.Contains(d.Footnote, "Night owl") {
		t.Errorf("expected night-owl footnote, got %q", d.Footnote)
	}
}

// TestFormatThousands tests the nl-NL grouping helper.
func TestFormatThousands(t *testing.T) {
	cases := map[int]string{0: "0", 950: "950", 1000: "1.000", 39326: "39.326", 1234567: "1.234.567"}
	for n, want := range cases {
		if got := formatThousands(n); got != want {
			t.Errorf("formatThousands(%d): expected %s, got %s", n, want, got)
		}
	}
}

// TestTrimFloat tests the whole-number trim.
func TestTrimFloat(t *testing.T) {
	if got := trimFloat(3.0); got != "3" {
		t.Errorf("expected 3, got %s", got)
	}
	if got := trimFloat(2.5); got != "2.5" {
		t.Errorf("expected 2.5, got %s", got)
	}
}

package imaging

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"wrapped/internal/domain/record"
	"wrapped/internal/domain/slide"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer("")
	if err != nil {
		t.Fatalf("renderer without font must not fail: %v", err)
	}
	return r
}

func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	return cfg.Width, cfg.Height
}

// TestParseFormat tests the query-value mapping including the default.
func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"": FormatStory, "story": FormatStory, "post": FormatPost} {
		got, err := ParseFormat(raw)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q): got %q, %v", raw, got, err)
		}
	}
	if _, err := ParseFormat("square"); err == nil {
		t.Error("expected error for unknown format")
	}
}

// TestSlide_ExactDimensions tests that exports land on the exact share
// dimensions for both formats.
func TestSlide_ExactDimensions(t *testing.T) {
	r := testRenderer(t)
	d := slide.Descriptor{
		ID:         "attendance",
		Background: slide.BgTeal,
		Lead:       "Dit jaar kwam je",
		Hero:       "120",
		Sub:        "keer trainen",
		Note:       "Dat is 2.3x per week",
	}

	data, err := r.Slide(d, FormatStory)
	if err != nil {
		t.Fatalf("story render: %v", err)
	}
	if w, h := decodeDims(t, data); w != 1080 || h != 1920 {
		t.Errorf("story: expected 1080x1920, got %dx%d", w, h)
	}

	data, err = r.Slide(d, FormatPost)
	if err != nil {
		t.Fatalf("post render: %v", err)
	}
	if w, h := decodeDims(t, data); w != 1080 || h != 1080 {
		t.Errorf("post: expected 1080x1080, got %dx%d", w, h)
	}
}

// TestSlide_UnknownBackground tests the dark-gradient fallback.
func TestSlide_UnknownBackground(t *testing.T) {
	r := testRenderer(t)
	data, err := r.Slide(slide.Descriptor{ID: "x", Background: "nope", Hero: "?"}, FormatPost)
	if err != nil {
		t.Fatalf("unknown background must fall back, got %v", err)
	}
	if w, h := decodeDims(t, data); w != 1080 || h != 1080 {
		t.Errorf("expected 1080x1080, got %dx%d", w, h)
	}
}

// TestMemberSummary tests the recap card render.
func TestMemberSummary(t *testing.T) {
	r := testRenderer(t)
	m := record.Member{FirstName: "Kim", Visits: 120, FavoriteDay: "maandag",
		FavoriteCoaches: "Sanne", FavoriteClassType: "WOD", Percentile: 5}
	data, err := r.MemberSummary(m, record.CommunityStats{TotalMembers: 438}, FormatStory)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if w, h := decodeDims(t, data); w != 1080 || h != 1920 {
		t.Errorf("expected 1080x1920, got %dx%d", w, h)
	}
}

// TestCommunitySlide_Range tests that all numbered slides render and that
// out-of-range numbers fail with ErrUnknownSlide.
func TestCommunitySlide_Range(t *testing.T) {
	r := testRenderer(t)
	stats := record.CommunityStats{
		TotalMembers: 438,
		Highlights: record.Highlights{
			TotalVisits: 39326, TotalMembers: 438, TopClass: "WOD", TopClassVisits: 12000,
			BusiestDay: "maandag", QuietestDay: "zondag", EarlyBirds: 80, NightOwls: 120,
			BuddyDuos: 95, StrongestBuddySessions: 48,
			BusiestClass: "WOD", BusiestClassDate: "6 januari", BusiestClassAttendees: 24,
		},
	}
	top := []record.TopCoach{{FirstName: "Sanne", ClassesGiven: 250}}

	for n := 1; n <= CommunitySlideCount; n++ {
		data, err := r.CommunitySlide(n, stats, top, FormatStory)
		if err != nil {
			t.Fatalf("slide %d: %v", n, err)
		}
		if w, h := decodeDims(t, data); w != 1080 || h != 1920 {
			t.Errorf("slide %d: expected 1080x1920, got %dx%d", n, w, h)
		}
	}

	for _, n := range []int{0, -1, CommunitySlideCount + 1} {
		if _, err := r.CommunitySlide(n, stats, top, FormatStory); !errors.Is(err, ErrUnknownSlide) {
			t.Errorf("slide %d: expected ErrUnknownSlide, got %v", n, err)
		}
	}
}

// TestCaption tests the social caption content.
func TestCaption(t *testing.T) {
	stats := record.CommunityStats{Highlights: record.Highlights{
		TotalVisits: 39326, TotalMembers: 438, TopClass: "WOD", TopClassVisits: 12000,
		BusiestDay: "maandag", FavoriteTime: "18:00",
	}}
	caption := Caption(stats)
	for _, want := range []string{"39.326", "438", "WOD", "maandag", "18:00"} {
		if !bytes.Contains([]byte(caption), []byte(want)) {
			t.Errorf("caption missing %q:\n%s", want, caption)
		}
	}
}

// TestGroupThousands tests the nl-NL separator helper.
func TestGroupThousands(t *testing.T) {
	cases := map[int]string{0: "0", 999: "999", 1000: "1.000", 39326: "39.326", -1234: "-1.234"}
	for n, want := range cases {
		if got := groupThousands(n); got != want {
			t.Errorf("groupThousands(%d): expected %s, got %s", n, want, got)
		}
	}
}

package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wrapped/internal/adapters/dataset"
	"wrapped/internal/adapters/imaging"
	responseStore "wrapped/internal/adapters/storage/response"
	viewStore "wrapped/internal/adapters/storage/view"
	domainResponse "wrapped/internal/domain/response"
	domainView "wrapped/internal/domain/view"
)

// newTestMux wires the full middleware stack against in-memory stores and
// the built-in sample dataset.
func newTestMux(t *testing.T) http.Handler {
	t.Helper()
	RateLimitPerSecond = 1000 // don't trip the limiter from a test loop
	r, err := imaging.NewRenderer("")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	SetEmailSender(nil, "")
	SetAdminCredentials(nil)
	return NewMux(t.TempDir(), &Stores{
		ViewStore:     viewStore.NewMemoryStore(),
		ResponseStore: responseStore.NewMemoryStore(),
	}, dataset.SampleCatalog(), r)
}

func postJSON(t *testing.T, mux http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, mux http.Handler, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return w
}

// TestViews_UpsertFlow tests that two views of the same code leave one entry
// with viewCount 2.
func TestViews_UpsertFlow(t *testing.T) {
	mux := newTestMux(t)
	body := map[string]any{"code": "AB12", "memberId": "101", "voornaam": "Kim"}

	if w := postJSON(t, mux, "/views", body); w.Code != http.StatusOK {
		t.Fatalf("first view: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := postJSON(t, mux, "/views", body); w.Code != http.StatusOK {
		t.Fatalf("second view: expected 200, got %d", w.Code)
	}

	var entries []domainView.Entry
	if w := getJSON(t, mux, "/views", &entries); w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].ViewCount != 2 {
		t.Errorf("expected viewCount=2, got %d", entries[0].ViewCount)
	}
}

// TestViews_CoachSentinelAccepted tests that memberId "0" is valid input.
func TestViews_CoachSentinelAccepted(t *testing.T) {
	mux := newTestMux(t)
	w := postJSON(t, mux, "/views", map[string]any{
		"code": "COACH1", "memberId": "0", "voornaam": "Sanne (coach)",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("coach view: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

// TestViews_MissingFields tests the 400 path.
func TestViews_MissingFields(t *testing.T) {
	mux := newTestMux(t)
	for _, body := range []map[string]any{
		{"memberId": "101", "voornaam": "Kim"},
		{"code": "AB12", "voornaam": "Kim"},
		{"code": "AB12", "memberId": "101"},
	} {
		if w := postJSON(t, mux, "/views", body); w.Code != http.StatusBadRequest {
			t.Errorf("body %v: expected 400, got %d", body, w.Code)
		}
	}
}

// TestResponses_ReplaceFlow tests the wholesale-replace semantics through
// the HTTP surface: a second submission by member 7 replaces the first and
// clears the omitted field.
func TestResponses_ReplaceFlow(t *testing.T) {
	mux := newTestMux(t)

	first := map[string]any{
		"memberId": 7, "voornaam": "Kim",
		"voornemen2026": "3x per week", "grootsteWin2025": "Muscle-up",
	}
	if w := postJSON(t, mux, "/responses", first); w.Code != http.StatusOK {
		t.Fatalf("first submit: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	second := map[string]any{
		"memberId": 7, "voornaam": "Kim", "grootsteWin2025": "100kg deadlift",
	}
	if w := postJSON(t, mux, "/responses", second); w.Code != http.StatusOK {
		t.Fatalf("second submit: expected 200, got %d", w.Code)
	}

	var entries []domainResponse.Entry
	if w := getJSON(t, mux, "/responses", &entries); w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if entries[0].BiggestWin2025 != "100kg deadlift" {
		t.Errorf("expected replaced win, got %q", entries[0].BiggestWin2025)
	}
	if entries[0].Intention2026 != "" {
		t.Errorf("omitted intention must be cleared, got %q", entries[0].Intention2026)
	}
}

// TestResponses_Validation tests 400s on missing identity fields.
func TestResponses_Validation(t *testing.T) {
	mux := newTestMux(t)
	for _, body := range []map[string]any{
		{"voornaam": "Kim"},
		{"memberId": 7},
		{"memberId": 0, "voornaam": "Kim"},
	} {
		if w := postJSON(t, mux, "/responses", body); w.Code != http.StatusBadRequest {
			t.Errorf("body %v: expected 400, got %d", body, w.Code)
		}
	}
}

// TestAPIPrefixAliases tests that the /api/ spellings hit the same handlers.
func TestAPIPrefixAliases(t *testing.T) {
	mux := newTestMux(t)
	body := map[string]any{"code": "AB12", "memberId": "101", "voornaam": "Kim"}
	if w := postJSON(t, mux, "/api/views", body); w.Code != http.StatusOK {
		t.Fatalf("POST /api/views: expected 200, got %d", w.Code)
	}
	var entries []domainView.Entry
	getJSON(t, mux, "/views", &entries)
	if len(entries) != 1 || entries[0].ViewCount != 1 {
		t.Errorf("bare and /api/ paths must share state, got %+v", entries)
	}
}

// TestResolve tests code resolution, its view side effect, and the error
// statuses.
func TestResolve(t *testing.T) {
	mux := newTestMux(t)

	w := postJSON(t, mux, "/api/resolve", map[string]any{"code": "ab12"})
	if w.Code != http.StatusOK {
		t.Fatalf("resolve: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var rec struct {
		Kind   string `json:"kind"`
		Member *struct {
			FirstName string `json:"voornaam"`
		} `json:"member"`
	}
	if err := json.NewDecoder(w.Body).Decode(&rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Kind != "member" || rec.Member == nil || rec.Member.FirstName != "Kim" {
		t.Errorf("unexpected record: %+v", rec)
	}

	var entries []domainView.Entry
	getJSON(t, mux, "/views", &entries)
	if len(entries) != 1 || entries[0].Code != "AB12" {
		t.Errorf("resolution must log a view, got %+v", entries)
	}

	if w := postJSON(t, mux, "/api/resolve", map[string]any{"code": "ZZZZ"}); w.Code != http.StatusNotFound {
		t.Errorf("unknown code: expected 404, got %d", w.Code)
	}
	if w := postJSON(t, mux, "/api/resolve", map[string]any{"code": "ab"}); w.Code != http.StatusBadRequest {
		t.Errorf("short code: expected 400, got %d", w.Code)
	}
}

// TestSlides tests the deck endpoint for both record kinds.
func TestSlides(t *testing.T) {
	mux := newTestMux(t)

	var deck struct {
		Kind   string `json:"kind"`
		Slides []struct {
			ID string `json:"id"`
		} `json:"slides"`
	}
	if w := getJSON(t, mux, "/api/slides?code=AB12", &deck); w.Code != http.StatusOK {
		t.Fatalf("member slides: expected 200, got %d", w.Code)
	}
	if deck.Kind != "member" || len(deck.Slides) == 0 {
		t.Errorf("unexpected member deck: %+v", deck)
	}
	if deck.Slides[0].ID != "intro" {
		t.Errorf("deck must start with intro, got %s", deck.Slides[0].ID)
	}

	if w := getJSON(t, mux, "/api/slides?code=COACH1", &deck); w.Code != http.StatusOK {
		t.Fatalf("coach slides: expected 200, got %d", w.Code)
	}
	if deck.Kind != "coach" {
		t.Errorf("expected coach deck, got %s", deck.Kind)
	}

	if w := getJSON(t, mux, "/api/slides?code=ZZZZ", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown code: expected 404, got %d", w.Code)
	}
}

// TestExportSummary tests the PNG export surface end to end.
func TestExportSummary(t *testing.T) {
	mux := newTestMux(t)

	w := getJSON(t, mux, "/api/export/summary?code=AB12&format=post", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("expected image/png, got %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("expected attachment disposition")
	}

	if w := getJSON(t, mux, "/api/export/community/99", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown community slide: expected 404, got %d", w.Code)
	}
	if w := getJSON(t, mux, "/api/export/summary?code=AB12&format=banner", nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown format: expected 400, got %d", w.Code)
	}
}

// TestAdmin_DisabledWithoutPassword tests that the admin login is off until
// credentials are configured.
func TestAdmin_DisabledWithoutPassword(t *testing.T) {
	mux := newTestMux(t)
	if w := getJSON(t, mux, "/admin/login", nil); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for unconfigured admin, got %d", w.Code)
	}
	// Data pages redirect to the login rather than leaking anything.
	if w := getJSON(t, mux, "/admin", nil); w.Code != http.StatusSeeOther {
		t.Errorf("expected redirect for anonymous /admin, got %d", w.Code)
	}
}

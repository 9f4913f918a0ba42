package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"wrapped/internal/adapters/dataset"
	"wrapped/internal/application/orchestrators"
	"wrapped/internal/application/projections"
	"wrapped/internal/domain/record"
	domainResponse "wrapped/internal/domain/response"
	"wrapped/internal/domain/slide"
	domainView "wrapped/internal/domain/view"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	jsonError(w, "internal server error", http.StatusInternalServerError)
}

// jsonError writes an error as a JSON body, matching what the client expects
// from every API route.
func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write_json_failed", "error", err.Error())
	}
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// registerRoutes wires all API, export and admin routes. The JSON routes are
// registered both bare and under /api/ so older clients keep working.
func registerRoutes(mux *http.ServeMux) {
	for _, prefix := range []string{"", "/api"} {
		mux.HandleFunc(prefix+"/responses", handleResponses)
		mux.HandleFunc(prefix+"/views", handleViews)
	}
	mux.HandleFunc("/api/resolve", handleResolve)
	mux.HandleFunc("/api/slides", handleSlides)

	registerExportRoutes(mux)
	registerAdminRoutes(mux)
}

// handleResponses handles POST (submit) and GET (list) for /responses.
func handleResponses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		handleSubmitResponse(w, r)
	case http.MethodGet:
		handleListResponses(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleSubmitResponse stores one feedback submission, replacing any earlier
// submission by the same member.
// PRE: body carries memberId > 0 and a non-empty voornaam.
// POST: Store holds exactly one response for the member; 400 on bad input.
func handleSubmitResponse(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MemberID       int    `json:"memberId"`
		FirstName      string `json:"voornaam"`
		Intention2026  string `json:"voornemen2026"`
		BiggestWin2025 string `json:"grootsteWin2025"`
	}
	if err := strictDecode(r, &body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if body.MemberID <= 0 || strings.TrimSpace(body.FirstName) == "" {
		jsonError(w, "memberId en voornaam zijn verplicht", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteSubmitResponse(r.Context(), orchestrators.SubmitResponseCommand{
		MemberID:       body.MemberID,
		FirstName:      body.FirstName,
		Intention2026:  body.Intention2026,
		BiggestWin2025: body.BiggestWin2025,
	}, orchestrators.SubmitResponseDeps{
		ResponseStore: stores.ResponseStore,
		EmailSender:   emailSender,
		NotifyTo:      emailNotifyTo,
		Now:           timeNow,
	})
	if err != nil {
		if strings.Contains(err.Error(), "validation") {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "timestamp": result.Entry.Timestamp})
}

// handleListResponses returns all responses, most recent first.
func handleListResponses(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetResponseList(r.Context(), projections.GetResponseListDeps{
		ResponseStore: stores.ResponseStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	entries := result.Entries
	if entries == nil {
		entries = []domainResponse.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleViews handles POST (record) and GET (list) for /views.
func handleViews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		handleRecordView(w, r)
	case http.MethodGet:
		handleListViews(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleRecordView upserts one view log entry for a code.
// PRE: body carries code, memberId and voornaam. memberId "0" marks a coach
// view and is a valid value, not a missing one.
// POST: One entry per code with the count incremented; 400 on bad input.
func handleRecordView(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code      string `json:"code"`
		MemberID  string `json:"memberId"`
		FirstName string `json:"voornaam"`
	}
	if err := strictDecode(r, &body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Code) == "" || strings.TrimSpace(body.MemberID) == "" || strings.TrimSpace(body.FirstName) == "" {
		jsonError(w, "code, memberId en voornaam zijn verplicht", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteRecordView(r.Context(), orchestrators.RecordViewCommand{
		Code:      body.Code,
		MemberID:  body.MemberID,
		FirstName: body.FirstName,
	}, orchestrators.RecordViewDeps{
		ViewStore: stores.ViewStore,
		Now:       timeNow,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "viewCount": result.Entry.ViewCount})
}

// handleListViews returns the view log, most recent first.
func handleListViews(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetViewLog(r.Context(), projections.GetViewLogDeps{
		ViewStore: stores.ViewStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	entries := result.Entries
	if entries == nil {
		entries = []domainView.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleResolve looks an access code up and, on a hit, logs the view.
// POST only: resolution has the view-log side effect.
func handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := strictDecode(r, &body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteResolveCode(r.Context(), orchestrators.ResolveCodeCommand{
		Code: body.Code,
	}, orchestrators.ResolveCodeDeps{
		Catalog:   catalog,
		ViewStore: stores.ViewStore,
		Now:       timeNow,
	})
	if err != nil {
		writeResolveError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Record)
}

// handleSlides returns the resolved record plus its rendered slide deck.
// GET with ?code=; does not log a view (resolution already did).
func handleSlides(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rec, err := catalog.Resolve(r.URL.Query().Get("code"))
	if err != nil {
		writeResolveError(w, err)
		return
	}

	var deck []slide.Descriptor
	switch rec.Kind {
	case record.KindMember:
		deck = slide.BuildMemberDeck(*rec.Member, catalog.Stats())
	case record.KindCoach:
		deck = slide.BuildCoachDeck(*rec.Coach)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"kind":   rec.Kind,
		"slides": deck,
	})
}

func writeResolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dataset.ErrCodeTooShort):
		jsonError(w, "code is te kort", http.StatusBadRequest)
	case errors.Is(err, dataset.ErrNotFound):
		jsonError(w, "code niet gevonden", http.StatusNotFound)
	default:
		internalError(w, err)
	}
}

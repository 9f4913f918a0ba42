package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wrapped/internal/adapters/imaging"
	"wrapped/internal/domain/record"
	"wrapped/internal/domain/slide"
)

// registerExportRoutes wires the PNG export routes. Every image route takes
// ?format=story|post (story default) and streams a finished PNG as an
// attachment; images are rendered fully in memory before the first byte is
// written, so clients never receive a truncated file.
func registerExportRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/export/summary", handleExportSummary)
	mux.HandleFunc("/api/export/slide", handleExportSlide)
	mux.HandleFunc("/api/export/quote", handleExportQuote)
	mux.HandleFunc("/api/export/community/", handleExportCommunity)
	mux.HandleFunc("/api/export/caption", handleExportCaption)
}

func exportFormat(w http.ResponseWriter, r *http.Request) (imaging.Format, bool) {
	f, err := imaging.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return f, true
}

func servePNG(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// handleExportSummary renders the recap card for the code's member or coach.
// GET /api/export/summary?code=X&format=story|post
func handleExportSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, ok := exportFormat(w, r)
	if !ok {
		return
	}
	rec, err := catalog.Resolve(r.URL.Query().Get("code"))
	if err != nil {
		writeResolveError(w, err)
		return
	}

	var data []byte
	switch rec.Kind {
	case record.KindCoach:
		data, err = renderer.CoachSummary(*rec.Coach, f)
	default:
		data, err = renderer.MemberSummary(*rec.Member, catalog.Stats(), f)
	}
	if err != nil {
		internalError(w, err)
		return
	}
	servePNG(w, fmt.Sprintf("wrapped-2025-%s.png", strings.ToLower(rec.Code())), data)
}

// handleExportSlide renders one deck slide as a PNG.
// GET /api/export/slide?code=X&n=0&format=story|post where n indexes the deck.
func handleExportSlide(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, ok := exportFormat(w, r)
	if !ok {
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

	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n < 0 || n >= len(deck) {
		jsonError(w, "n must index a deck slide", http.StatusBadRequest)
		return
	}
	data, err := renderer.Slide(deck[n], f)
	if err != nil {
		internalError(w, err)
		return
	}
	servePNG(w, fmt.Sprintf("wrapped-2025-%s-%s.png", strings.ToLower(rec.Code()), deck[n].ID), data)
}

// handleExportQuote renders one feedback answer as a quote card.
// GET /api/export/quote?memberId=7&field=win|intention&format=story|post
func handleExportQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, ok := exportFormat(w, r)
	if !ok {
		return
	}
	memberID, err := strconv.Atoi(r.URL.Query().Get("memberId"))
	if err != nil || memberID <= 0 {
		jsonError(w, "memberId is verplicht", http.StatusBadRequest)
		return
	}
	entry, found, err := stores.ResponseStore.Get(r.Context(), memberID)
	if err != nil {
		internalError(w, err)
		return
	}
	if !found {
		jsonError(w, "geen reactie gevonden", http.StatusNotFound)
		return
	}

	var text string
	field := r.URL.Query().Get("field")
	switch field {
	case "", "win":
		field = "win"
		text = entry.BiggestWin2025
	case "intention":
		text = entry.Intention2026
	default:
		jsonError(w, "field must be win or intention", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(text) == "" {
		jsonError(w, "deze reactie heeft geen tekst voor dit veld", http.StatusNotFound)
		return
	}

	data, err := renderer.Quote(entry.FirstName, text, f)
	if err != nil {
		internalError(w, err)
		return
	}
	servePNG(w, fmt.Sprintf("wrapped-quote-%d-%s.png", memberID, field), data)
}

// handleExportCommunity renders one gym-wide recap slide.
// GET /api/export/community/{n}?format=story|post with n in 1..CommunitySlideCount.
func handleExportCommunity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	f, ok := exportFormat(w, r)
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/export/community/"))
	if err != nil {
		jsonError(w, "slide number is required", http.StatusBadRequest)
		return
	}

	data, err := renderer.CommunitySlide(n, catalog.Stats(), catalog.TopCoaches(), f)
	if errors.Is(err, imaging.ErrUnknownSlide) {
		jsonError(w, fmt.Sprintf("slide must be 1..%d", imaging.CommunitySlideCount), http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	servePNG(w, fmt.Sprintf("wrapped-2025-community-%d.png", n), data)
}

// handleExportCaption returns the ready-to-paste social caption as plain text.
func handleExportCaption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, imaging.Caption(catalog.Stats()))
}

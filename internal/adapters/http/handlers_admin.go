package web

import (
	"encoding/csv"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gorilla/csrf"

	"wrapped/internal/adapters/http/middleware"
	"wrapped/internal/application/projections"
)

const templatesDir = "internal/adapters/http/templates"

// registerAdminRoutes wires the admin pages. The login flow is form-based
// (CSRF-protected); the data pages and downloads sit behind RequireAdmin.
func registerAdminRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/admin/login", handleAdminLogin)
	mux.Handle("/admin/logout", middleware.RequireAdmin(http.HandlerFunc(handleAdminLogout)))
	mux.Handle("/admin", middleware.RequireAdmin(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("/admin/responses.csv", middleware.RequireAdmin(http.HandlerFunc(handleAdminResponsesCSV)))
	mux.Handle("/admin/responses.json", middleware.RequireAdmin(http.HandlerFunc(handleAdminResponsesJSON)))
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	funcMap := template.FuncMap{
		"csrfField": func() template.HTML { return csrf.TemplateField(r) },
	}
	tmpl, err := template.New(templateName).Funcs(funcMap).ParseFiles(filepath.Join(templatesDir, templateName))
	if err != nil {
		slog.Error("template_parse_failed", "template", templateName, "error", err.Error())
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, templateName, data); err != nil {
		slog.Error("template_render_failed", "template", templateName, "error", err.Error())
	}
}

// handleAdminLogin renders the login form (GET) and checks the password
// (POST). With no admin password configured the whole admin surface is off.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if len(adminPasswordHash) == 0 {
		http.Error(w, "admin login is not configured", http.StatusForbidden)
		return
	}
	switch r.Method {
	case http.MethodGet:
		renderTemplate(w, r, "login.html", map[string]any{})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "malformed form", http.StatusBadRequest)
			return
		}
		if !CheckAdminPassword(r.FormValue("password")) {
			slog.Warn("admin_login_failed", "ip", r.RemoteAddr)
			renderTemplate(w, r, "login.html", map[string]any{"Error": "Wachtwoord onjuist"})
			return
		}
		token, err := sessions.Create()
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token)
		slog.Info("admin_login", "ip", r.RemoteAddr)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if token := middleware.SessionToken(r); token != "" {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// handleAdminDashboard shows the view log and the feedback responses.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	views, err := projections.QueryGetViewLog(r.Context(), projections.GetViewLogDeps{
		ViewStore: stores.ViewStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	responses, err := projections.QueryGetResponseList(r.Context(), projections.GetResponseListDeps{
		ResponseStore: stores.ResponseStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin.html", map[string]any{
		"Views":      views.Entries,
		"TotalViews": views.TotalViews,
		"Responses":  responses.Entries,
	})
}

// handleAdminResponsesCSV downloads all responses as a CSV file.
func handleAdminResponsesCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	result, err := projections.QueryGetResponseList(r.Context(), projections.GetResponseListDeps{
		ResponseStore: stores.ResponseStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="wrapped-responses.csv"`)
	cw := csv.NewWriter(w)
	cw.Write([]string{"memberId", "voornaam", "grootsteWin2025", "voornemen2026", "timestamp"})
	for _, e := range result.Entries {
		cw.Write([]string{
			strconv.Itoa(e.MemberID),
			e.FirstName,
			e.BiggestWin2025,
			e.Intention2026,
			e.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("csv_write_failed", "error", err.Error())
	}
}

// handleAdminResponsesJSON downloads all responses as a JSON file.
func handleAdminResponsesJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	result, err := projections.QueryGetResponseList(r.Context(), projections.GetResponseListDeps{
		ResponseStore: stores.ResponseStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="wrapped-responses.json"`)
	writeJSON(w, http.StatusOK, result.Entries)
}

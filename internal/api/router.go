// Package api serves the resume page, its JSON projections, static assets
// and the MCP tool surface.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kalambet/folio/internal/download"
	"github.com/kalambet/folio/internal/resume"
	"github.com/kalambet/folio/internal/view"
	"github.com/kalambet/folio/internal/web"
)

// ResumePath is where the resume page is mounted.
const ResumePath = "/resume"

// DownloadPrefix is the URL prefix the resume PDF is served under.
const DownloadPrefix = "/download"

// Deps holds everything the HTTP handler serves from.
type Deps struct {
	Projector *view.Projector
	Renderer  *web.Renderer
	Static    fs.FS
	Download  download.Info

	// PDF holds the file named by Download.Name. Nil disables the download
	// route.
	PDF fs.FS

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewHandler returns the application router.
func NewHandler(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestLog(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, ResumePath, http.StatusFound)
	})
	r.Get(ResumePath, handleResume(deps))

	r.Route("/api", func(r chi.Router) {
		r.Get("/skills", handleSkills(deps))
		r.Get("/categories", handleCategories(deps))
		r.Get("/background", handleBackground(deps))
	})

	if deps.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(deps.Static))))
	}
	if deps.PDF != nil {
		r.Get(DownloadPrefix+"/{name}", handleDownload(deps))
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleResume(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := view.ParseState(r.URL.Query())

		// Render into a buffer so a template failure still yields a clean 500.
		var buf bytes.Buffer
		if err := deps.Renderer.Resume(&buf, deps.Projector.Page(state)); err != nil {
			httpError(w, http.StatusInternalServerError, "render_error", "failed to render page: %v", err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

func handleSkills(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		if category == "" {
			category = resume.AllCategories
		}
		writeJSON(w, deps.Projector.SkillsView(category))
	}
}

func handleCategories(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Projector.Categories())
	}
}

func handleBackground(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, deps.Projector.Background())
	}
}

func handleDownload(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") != deps.Download.Name {
			httpError(w, http.StatusNotFound, "not_found", "no such file")
			return
		}
		data, err := fs.ReadFile(deps.PDF, deps.Download.Name)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to read resume pdf: %v", err)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deps.Download.Name))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Write(data)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}

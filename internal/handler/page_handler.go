package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahpc/backend/internal/locale"
)

// allowedPages is the allowlist of content page slugs.
var allowedPages = map[string]bool{
	"home":     true,
	"about":    true,
	"programs": true,
	"donate":   true,
}

// PageHandler handles GET /api/pages/{slug}.
type PageHandler struct {
	dir string
}

// NewPageHandler serves Markdown pages from dir, named <slug>.<locale>.md.
func NewPageHandler(dir string) *PageHandler {
	return &PageHandler{dir: dir}
}

// Page returns the page in the active locale, falling back to the default
// locale when no translation exists.
func (h *PageHandler) Page(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	if strings.Contains(slug, "/") || strings.Contains(slug, "\\") || strings.Contains(slug, "..") {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalidRequest")
		return
	}
	if !allowedPages[slug] {
		writeError(w, r, http.StatusNotFound, "not_found", "notFound")
		return
	}

	absDir, err := filepath.Abs(h.dir)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal", "somethingWentWrong")
		return
	}

	want := locale.Default
	if p, err := locale.FromContext(r.Context()); err == nil {
		want = p.Locale()
	}
	candidates := []locale.Locale{want}
	if want != locale.Default {
		candidates = append(candidates, locale.Default)
	}

	for _, l := range candidates {
		content, err := os.ReadFile(filepath.Join(absDir, slug+"."+string(l)+".md"))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, "internal", "somethingWentWrong")
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Header().Set("Content-Language", string(l))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(content)
		return
	}
	writeError(w, r, http.StatusNotFound, "not_found", "notFound")
}

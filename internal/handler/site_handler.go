package handler

import (
	"log/slog"
	"net/http"

	"github.com/ahpc/backend/internal/locale"
)

type siteResponse struct {
	MockMode          bool   `json:"mock_mode"`
	DonationWidgetURL string `json:"donation_widget_url"`
	Locale            string `json:"locale"`
	Dir               string `json:"dir"`
}

// Site handles GET /api/site.
func (h *Handler) Site(w http.ResponseWriter, r *http.Request) {
	resp := siteResponse{
		MockMode:          h.site.MockMode,
		DonationWidgetURL: h.site.DonationWidgetURL,
		Locale:            string(locale.Default),
		Dir:               locale.Default.Dir(),
	}
	if p, err := locale.FromContext(r.Context()); err == nil {
		resp.Locale = string(p.Locale())
		resp.Dir = p.Dir()
	}
	writeJSON(w, http.StatusOK, resp)
}

type i18nResponse struct {
	Locale       string            `json:"locale"`
	Dir          string            `json:"dir"`
	Supported    []locale.Locale   `json:"supported"`
	Translations map[string]string `json:"translations"`
}

func localeProvider(w http.ResponseWriter, r *http.Request) (*locale.Provider, bool) {
	p, err := locale.FromContext(r.Context())
	if err != nil {
		slog.Error("locale provider missing", "path", r.URL.Path)
		writeError(w, r, http.StatusInternalServerError, "internal", "somethingWentWrong")
		return nil, false
	}
	return p, true
}

func writeI18n(w http.ResponseWriter, p *locale.Provider) {
	writeJSON(w, http.StatusOK, i18nResponse{
		Locale:       string(p.Locale()),
		Dir:          p.Dir(),
		Supported:    locale.Supported(),
		Translations: p.Translations(),
	})
}

// I18n handles GET /api/i18n.
func (h *Handler) I18n(w http.ResponseWriter, r *http.Request) {
	p, ok := localeProvider(w, r)
	if !ok {
		return
	}
	writeI18n(w, p)
}

type setLocaleRequest struct {
	Locale string `json:"locale" validate:"required"`
}

// SetLocale handles PUT /api/locale.
func (h *Handler) SetLocale(w http.ResponseWriter, r *http.Request) {
	p, ok := localeProvider(w, r)
	if !ok {
		return
	}
	var req setLocaleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	l, err := locale.Parse(req.Locale)
	if err == nil {
		err = p.SetLocale(l)
	}
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unsupported_locale", "unsupportedLanguage")
		return
	}
	writeI18n(w, p)
}

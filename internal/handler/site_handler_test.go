package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ahpc/backend/internal/locale"
)

func withLocale(h http.HandlerFunc) http.Handler {
	return locale.Middleware(false)(h)
}

func TestSite_DefaultsWithoutLocaleProvider(t *testing.T) {
	h := New(nil, SiteConfig{MockMode: true, DonationWidgetURL: "https://donorbox.org/embed/ahpc-donate"})
	rec := httptest.NewRecorder()
	h.Site(rec, httptest.NewRequest("GET", "/api/site", nil))

	var resp siteResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.MockMode {
		t.Error("expected mock_mode=true")
	}
	if resp.DonationWidgetURL != "https://donorbox.org/embed/ahpc-donate" {
		t.Errorf("unexpected donation url %q", resp.DonationWidgetURL)
	}
	if resp.Locale != "en" || resp.Dir != "ltr" {
		t.Errorf("expected en/ltr, got %s/%s", resp.Locale, resp.Dir)
	}
}

func TestSite_ArabicCookie(t *testing.T) {
	h := New(nil, SiteConfig{})
	req := httptest.NewRequest("GET", "/api/site", nil)
	req.AddCookie(&http.Cookie{Name: locale.StorageKey, Value: "ar"})
	rec := httptest.NewRecorder()
	withLocale(h.Site).ServeHTTP(rec, req)

	var resp siteResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Locale != "ar" || resp.Dir != "rtl" {
		t.Errorf("expected ar/rtl, got %s/%s", resp.Locale, resp.Dir)
	}
	if got := rec.Header().Get("Content-Language"); got != "ar" {
		t.Errorf("expected Content-Language ar, got %q", got)
	}
}

func TestI18n_Translations(t *testing.T) {
	h := New(nil, SiteConfig{})
	rec := httptest.NewRecorder()
	withLocale(h.I18n).ServeHTTP(rec, httptest.NewRequest("GET", "/api/i18n", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp i18nResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Translations["donateNow"] != "Donate Now" {
		t.Errorf("unexpected donateNow %q", resp.Translations["donateNow"])
	}
	if len(resp.Supported) != 2 || resp.Supported[0] != locale.English {
		t.Errorf("unexpected supported list %v", resp.Supported)
	}
}

func TestI18n_WithoutProvider(t *testing.T) {
	h := New(nil, SiteConfig{})
	rec := httptest.NewRecorder()
	h.I18n(rec, httptest.NewRequest("GET", "/api/i18n", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestSetLocale_Arabic(t *testing.T) {
	h := New(nil, SiteConfig{})
	req := httptest.NewRequest("PUT", "/api/locale", strings.NewReader(`{"locale":"ar"}`))
	rec := httptest.NewRecorder()
	withLocale(h.SetLocale).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body: %s", rec.Code, rec.Body.String())
	}
	var resp i18nResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Locale != "ar" || resp.Dir != "rtl" {
		t.Errorf("expected ar/rtl, got %s/%s", resp.Locale, resp.Dir)
	}
	if resp.Translations["home"] != "الرئيسية" {
		t.Errorf("expected arabic translations, got %q", resp.Translations["home"])
	}

	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == locale.StorageKey && c.Value == "ar" {
			found = true
		}
	}
	if !found {
		t.Error("expected locale cookie to be set")
	}
}

func TestSetLocale_Unsupported(t *testing.T) {
	h := New(nil, SiteConfig{})
	for _, body := range []string{`{"locale":"fr"}`, `{}`, `not json`} {
		req := httptest.NewRequest("PUT", "/api/locale", strings.NewReader(body))
		rec := httptest.NewRecorder()
		withLocale(h.SetLocale).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
	}
}

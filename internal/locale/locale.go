// Package locale holds the active UI language and its static translations.
package locale

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// Locale is a supported UI language tag.
type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"
)

// Default is the locale used when no valid preference is stored.
const Default = English

// StorageKey is the key the preference is persisted under.
const StorageKey = "ahpc-lang"

var (
	ErrNoProvider        = errors.New("locale: no provider in context")
	ErrUnsupportedLocale = errors.New("locale: unsupported locale")
)

var (
	supported = []Locale{English, Arabic}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Arabic})
)

// Supported returns the supported locales, default first.
func Supported() []Locale {
	return append([]Locale(nil), supported...)
}

// Parse accepts a stored preference or a language tag ("ar", "ar-EG",
// "en-US"). Unknown or malformed values fail.
func Parse(s string) (Locale, error) {
	if s == "" {
		return "", ErrUnsupportedLocale
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", ErrUnsupportedLocale
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", ErrUnsupportedLocale
	}
	return supported[idx], nil
}

// Dir returns the text direction for l.
func (l Locale) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Store persists the preference across visits.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Document receives the lang/dir side effect of a locale change.
type Document interface {
	SetLang(lang string)
	SetDir(dir string)
}

// Provider is the active locale for one request scope.
type Provider struct {
	mu     sync.RWMutex
	locale Locale
	store  Store
	doc    Document
}

// NewProvider reads the stored preference. Absent or invalid values fall back
// to Default. The document is synced to the initial locale.
func NewProvider(store Store, doc Document) *Provider {
	l := Default
	if store != nil {
		if v, ok := store.Get(StorageKey); ok {
			if parsed, err := Parse(v); err == nil {
				l = parsed
			}
		}
	}
	p := &Provider{locale: l, store: store, doc: doc}
	p.apply(l)
	return p
}

func (p *Provider) apply(l Locale) {
	if p.doc == nil {
		return
	}
	p.doc.SetLang(string(l))
	p.doc.SetDir(l.Dir())
}

// Locale returns the active locale.
func (p *Provider) Locale() Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.locale
}

// SetLocale switches the active locale, persists it and updates the document.
func (p *Provider) SetLocale(l Locale) error {
	if _, ok := translations[l]; !ok {
		return ErrUnsupportedLocale
	}
	p.mu.Lock()
	p.locale = l
	p.mu.Unlock()

	if p.store != nil {
		p.store.Set(StorageKey, string(l))
	}
	p.apply(l)
	return nil
}

// T looks key up in the active locale. Missing keys are returned verbatim.
func (p *Provider) T(key string) string {
	if v, ok := translations[p.Locale()][key]; ok {
		return v
	}
	return key
}

// Dir returns the text direction of the active locale.
func (p *Provider) Dir() string {
	return p.Locale().Dir()
}

// Translations returns a copy of the active locale's table.
func (p *Provider) Translations() map[string]string {
	src := translations[p.Locale()]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// CookieMaxAge is how long the preference cookie lives.
const CookieMaxAge = 365 * 24 * time.Hour

// CookieStore keeps the preference in a browser cookie.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

func NewCookieStore(w http.ResponseWriter, r *http.Request, secure bool) *CookieStore {
	return &CookieStore{r: r, w: w, secure: secure}
}

func (s *CookieStore) Get(key string) (string, bool) {
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (s *CookieStore) Set(key, value string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(CookieMaxAge / time.Second),
		HttpOnly: false,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// HeaderDocument reflects lang and dir on the HTTP response.
type HeaderDocument struct {
	h http.Header
}

func NewHeaderDocument(h http.Header) *HeaderDocument {
	return &HeaderDocument{h: h}
}

func (d *HeaderDocument) SetLang(lang string) { d.h.Set("Content-Language", lang) }
func (d *HeaderDocument) SetDir(dir string)   { d.h.Set("X-Text-Direction", dir) }

type contextKey struct{}

// WithProvider stores p in ctx.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the Provider stored in ctx.
func FromContext(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(contextKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p, nil
}

// Middleware installs a Provider backed by the preference cookie.
func Middleware(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := NewProvider(NewCookieStore(w, r, secure), NewHeaderDocument(w.Header()))
			next.ServeHTTP(w, r.WithContext(WithProvider(r.Context(), p)))
		})
	}
}

// Notice translates key using the provider in ctx, or the default locale
// when the request has none.
func Notice(ctx context.Context, key string) string {
	if p, err := FromContext(ctx); err == nil {
		return p.T(key)
	}
	if v, ok := translations[Default][key]; ok {
		return v
	}
	return key
}

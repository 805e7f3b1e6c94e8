package handler

import (
	"net/http"
	"strings"

	"github.com/ahpc/backend/internal/locale"
	"github.com/ahpc/backend/internal/repository"
	"github.com/ahpc/backend/internal/service"
	"github.com/ahpc/backend/internal/session"
	"github.com/ahpc/backend/pkg/auth"
)

// AdminLoginPath is where the guard sends anonymous visitors.
const AdminLoginPath = "/admin/login"

// RouterConfig carries the HTTP-level settings.
type RouterConfig struct {
	FrontendURL     string
	PagesDir        string
	UploadDir       string // served under UploadURLPrefix; empty disables
	UploadURLPrefix string
	SessionSecret   []byte
	Secure          bool // cookies marked Secure
	Site            SiteConfig
}

// Services are the capabilities the routes call into.
type Services struct {
	DB         repository.DB   // nil in mock mode
	Auth       session.Backend // nil in mock mode
	Activities service.ActivityService
	Gallery    service.GalleryService
	Contacts   service.ContactService
}

// NewRouter builds the full API handler including the middleware chain.
func NewRouter(cfg RouterConfig, svc Services) http.Handler {
	h := New(svc.DB, cfg.Site)
	pageHandler := NewPageHandler(cfg.PagesDir)
	activityHandler := NewActivityHandler(svc.Activities)
	galleryHandler := NewGalleryHandler(svc.Gallery)
	contactHandler := NewContactHandler(svc.Contacts)
	activityImages := NewImageHandler(svc.Activities)
	galleryImages := NewImageHandler(svc.Gallery)
	authHandler := NewAuthHandler()
	dashboardHandler := NewDashboardHandler(svc.Contacts)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/site", h.Site)
	mux.HandleFunc("GET /api/i18n", h.I18n)
	mux.HandleFunc("PUT /api/locale", h.SetLocale)
	mux.HandleFunc("GET /api/pages/{slug}", pageHandler.Page)

	// public API
	mux.HandleFunc("GET /api/activities", activityHandler.List)
	mux.HandleFunc("GET /api/activities/latest", activityHandler.Latest)
	mux.HandleFunc("GET /api/activities/{id}", activityHandler.Get)
	mux.HandleFunc("GET /api/gallery", galleryHandler.List)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)

	// only routes that need the auth state get a session provider
	withSession := session.Middleware(svc.Auth)
	guard := func(f http.HandlerFunc) http.Handler {
		return withSession(session.RequireUser(AdminLoginPath)(f))
	}

	mux.Handle("POST /api/auth/login", withSession(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/auth/logout", withSession(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/session", withSession(http.HandlerFunc(authHandler.Session)))

	// admin API, login required
	mux.Handle("GET /api/admin/dashboard", guard(dashboardHandler.Dashboard))
	mux.Handle("GET /api/admin/activities", guard(activityHandler.AdminList))
	mux.Handle("POST /api/admin/activities", guard(activityHandler.Create))
	mux.Handle("POST /api/admin/activities/image", guard(activityImages.Upload))
	mux.Handle("GET /api/admin/activities/{id}", guard(activityHandler.Get))
	mux.Handle("PUT /api/admin/activities/{id}", guard(activityHandler.Update))
	mux.Handle("DELETE /api/admin/activities/{id}", guard(activityHandler.Delete))
	mux.Handle("GET /api/admin/gallery", guard(galleryHandler.List))
	mux.Handle("POST /api/admin/gallery", guard(galleryHandler.Create))
	mux.Handle("POST /api/admin/gallery/image", guard(galleryImages.Upload))
	mux.Handle("DELETE /api/admin/gallery/{id}", guard(galleryHandler.Delete))
	mux.Handle("GET /api/admin/messages", guard(contactHandler.AdminList))
	mux.Handle("PATCH /api/admin/messages/{id}/read", guard(contactHandler.MarkRead))
	mux.Handle("DELETE /api/admin/messages/{id}", guard(contactHandler.Delete))

	if cfg.UploadDir != "" && cfg.UploadURLPrefix != "" {
		prefix := strings.TrimRight(cfg.UploadURLPrefix, "/")
		mux.Handle("GET "+prefix+"/", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.UploadDir))))
	}

	return Chain(mux,
		RequestLogger,
		SecurityHeaders,
		CORS(cfg.FrontendURL),
		auth.ClientIdentity(cfg.SessionSecret, cfg.Secure),
		locale.Middleware(cfg.Secure),
	)
}

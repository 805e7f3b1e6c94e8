package handler

import (
	"github.com/ahpc/backend/internal/repository"
)

// SiteConfig is the public, non-secret site configuration.
type SiteConfig struct {
	MockMode          bool
	DonationWidgetURL string
}

// Handler serves health, site configuration and locale endpoints.
type Handler struct {
	db   repository.DB // nil in mock mode
	site SiteConfig
}

func New(db repository.DB, site SiteConfig) *Handler {
	return &Handler{db: db, site: site}
}

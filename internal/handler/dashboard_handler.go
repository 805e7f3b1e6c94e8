package handler

import (
	"context"
	"net/http"

	"github.com/ahpc/backend/internal/model"
)

// UnreadCounter is the part of service.ContactService the dashboard needs.
type UnreadCounter interface {
	CountUnread(ctx context.Context) (int, error)
}

// DashboardHandler serves the admin landing page data.
type DashboardHandler struct {
	contacts UnreadCounter
}

func NewDashboardHandler(contacts UnreadCounter) *DashboardHandler {
	return &DashboardHandler{contacts: contacts}
}

type dashboardResponse struct {
	User           *model.User `json:"user"`
	UnreadMessages int         `json:"unread_messages"`
}

// Dashboard handles GET /api/admin/dashboard. Must run behind session.RequireUser.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	p, ok := sessionProvider(w, r)
	if !ok {
		return
	}
	n, err := h.contacts.CountUnread(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "dashboard_failed")
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{User: p.State().User, UnreadMessages: n})
}

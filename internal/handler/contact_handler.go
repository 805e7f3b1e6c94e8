package handler

import (
	"net/http"
	"strings"

	"github.com/ahpc/backend/internal/locale"
	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submission and the admin inbox.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// normalize trims surrounding whitespace so blank fields fail "required".
func (req *submitRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
}

type submitResponse struct {
	ID     string `json:"id"`
	Notice string `json:"notice"`
}

// Submit handles POST /api/contact.
// name, email and message are required; subject is optional; message max 5000 chars.
// In mock mode the message is dropped and the id is empty.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, r, http.StatusBadRequest, "message_too_long", "invalidRequest")
		return
	}

	id, err := h.contactService.Submit(r.Context(), model.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err, "submit_failed")
		return
	}
	writeJSON(w, http.StatusCreated, submitResponse{ID: id, Notice: locale.Notice(r.Context(), "messageSent")})
}

// adminListResponse is the JSON response for GET /api/admin/messages.
type adminListResponse struct {
	Messages []*model.ContactMessage `json:"messages"`
}

// AdminList handles GET /api/admin/messages.
// Supports query params: status (all/unread/read), limit.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.ContactListOptions{
		Status: r.URL.Query().Get("status"),
	}
	switch opts.Status {
	case "", "all", "read", "unread":
	default:
		writeError(w, r, http.StatusBadRequest, "invalid_status", "invalidRequest")
		return
	}
	if n := queryInt(r, "limit"); n > 0 && n <= 100 {
		opts.Limit = n
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, adminListResponse{Messages: messages})
}

// MarkRead handles PATCH /api/admin/messages/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.MarkRead(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{OK: true, Notice: locale.Notice(r.Context(), "messageMarkedRead")})
}

// Delete handles DELETE /api/admin/messages/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{OK: true, Notice: locale.Notice(r.Context(), "messageDeleted")})
}

package handler

import (
	"net/http"

	"github.com/ahpc/backend/internal/locale"
	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/service"
)

// GalleryHandler serves the public gallery and its admin screen.
type GalleryHandler struct {
	svc service.GalleryService
}

func NewGalleryHandler(svc service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

type galleryListResponse struct {
	Images []*model.GalleryImage `json:"images"`
}

// List handles GET /api/gallery?category=&limit= and GET /api/admin/gallery.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	c := r.URL.Query().Get("category")
	if c != "" && c != model.CategoryAll && !model.IsGalleryCategory(c) {
		writeError(w, r, http.StatusBadRequest, "invalid_category", "invalidRequest")
		return
	}
	images, err := h.svc.List(r.Context(), model.GalleryListOptions{Category: c, Limit: queryInt(r, "limit")})
	if err != nil {
		writeServiceError(w, r, err, "list_failed")
		return
	}
	if images == nil {
		images = []*model.GalleryImage{}
	}
	writeJSON(w, http.StatusOK, galleryListResponse{Images: images})
}

type createGalleryImageRequest struct {
	URL      string `json:"url" validate:"required"`
	Caption  string `json:"caption"`
	Category string `json:"category" validate:"required,oneof=activities education healthcare shelter events"`
}

// Create handles POST /api/admin/gallery.
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGalleryImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	id, err := h.svc.Create(r.Context(), model.GalleryImageInput{
		URL:      req.URL,
		Caption:  req.Caption,
		Category: req.Category,
	})
	if err != nil {
		writeServiceError(w, r, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, mutationResponse{ID: id, OK: true, Notice: locale.Notice(r.Context(), "imageAdded")})
}

// Delete handles DELETE /api/admin/gallery/{id}.
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{OK: true, Notice: locale.Notice(r.Context(), "imageDeleted")})
}

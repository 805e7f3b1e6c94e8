package handler

import (
	"net/http"
	"strconv"

	"github.com/ahpc/backend/internal/locale"
	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/service"
)

// ActivityHandler serves the public activities feed and the admin editor.
type ActivityHandler struct {
	svc service.ActivityService
}

func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

type activityListResponse struct {
	Activities []*model.Activity `json:"activities"`
}

// queryInt returns the positive integer query parameter name, or 0.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func validActivityFilter(c string) bool {
	return c == "" || c == model.CategoryAll || model.IsActivityCategory(c)
}

func (h *ActivityHandler) writeList(w http.ResponseWriter, r *http.Request, opts model.ActivityListOptions) {
	if !validActivityFilter(opts.Category) {
		writeError(w, r, http.StatusBadRequest, "invalid_category", "invalidRequest")
		return
	}
	items, err := h.svc.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "list_failed")
		return
	}
	if items == nil {
		items = []*model.Activity{}
	}
	writeJSON(w, http.StatusOK, activityListResponse{Activities: items})
}

// List handles GET /api/activities?category=&limit=.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, model.ActivityListOptions{
		Category: r.URL.Query().Get("category"),
		Limit:    queryInt(r, "limit"),
	})
}

// Latest handles GET /api/activities/latest?count=.
func (h *ActivityHandler) Latest(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Latest(r.Context(), queryInt(r, "count"))
	if err != nil {
		writeServiceError(w, r, err, "list_failed")
		return
	}
	if items == nil {
		items = []*model.Activity{}
	}
	writeJSON(w, http.StatusOK, activityListResponse{Activities: items})
}

// Get handles GET /api/activities/{id} and GET /api/admin/activities/{id}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get_failed")
		return
	}
	if a == nil {
		writeError(w, r, http.StatusNotFound, "not_found", "noActivities")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// AdminList handles GET /api/admin/activities. It returns up to the hard
// cap so the editor sees everything the feed can show.
func (h *ActivityHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, model.ActivityListOptions{
		Category: r.URL.Query().Get("category"),
		Limit:    service.MaxActivityPageSize,
	})
}

type createActivityRequest struct {
	Title            string `json:"title" validate:"required"`
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	Category         string `json:"category" validate:"required,oneof=education healthcare shelter food"`
	ShortDescription string `json:"short_description" validate:"required"`
	FullDescription  string `json:"full_description" validate:"required"`
	ImageURL         string `json:"image_url"`
	Published        *bool  `json:"published"`
}

type updateActivityRequest struct {
	Title            *string `json:"title" validate:"omitnil,min=1"`
	Date             *string `json:"date" validate:"omitnil,datetime=2006-01-02"`
	Category         *string `json:"category" validate:"omitnil,oneof=education healthcare shelter food"`
	ShortDescription *string `json:"short_description" validate:"omitnil,min=1"`
	FullDescription  *string `json:"full_description" validate:"omitnil,min=1"`
	ImageURL         *string `json:"image_url"`
	Published        *bool   `json:"published"`
}

type mutationResponse struct {
	ID     string `json:"id,omitempty"`
	OK     bool   `json:"ok"`
	Notice string `json:"notice"`
}

// Create handles POST /api/admin/activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	id, err := h.svc.Create(r.Context(), model.ActivityInput{
		Title:            req.Title,
		Date:             req.Date,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		ImageURL:         req.ImageURL,
		Published:        req.Published,
	})
	if err != nil {
		writeServiceError(w, r, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, mutationResponse{ID: id, OK: true, Notice: locale.Notice(r.Context(), "activityCreated")})
}

// Update handles PUT /api/admin/activities/{id}. Omitted fields are unchanged.
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateActivityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	id := r.PathValue("id")
	err := h.svc.Update(r.Context(), id, model.ActivityPatch{
		Title:            req.Title,
		Date:             req.Date,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		ImageURL:         req.ImageURL,
		Published:        req.Published,
	})
	if err != nil {
		writeServiceError(w, r, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{ID: id, OK: true, Notice: locale.Notice(r.Context(), "activityUpdated")})
}

// Delete handles DELETE /api/admin/activities/{id}.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, mutationResponse{OK: true, Notice: locale.Notice(r.Context(), "activityDeleted")})
}

package handler

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
)

const maxImageSize = 5 << 20 // 5 MB

// ImageUploader stores an uploaded image and returns its public URL.
// ActivityService and GalleryService both satisfy it.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename string, data io.Reader, contentType string) (string, error)
}

// ImageHandler accepts image uploads from the admin screens.
type ImageHandler struct {
	uploader ImageUploader
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(uploader ImageUploader) *ImageHandler {
	return &ImageHandler{uploader: uploader}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload handles POST /api/admin/{activities,gallery}/image.
// The multipart field "image" must hold an image of at most 5MB.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, r, http.StatusBadRequest, "file_too_large", "imageTooLarge")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "image_required", "fillRequired")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeError(w, r, http.StatusBadRequest, "file_too_large", "imageTooLarge")
		return
	}

	ct := header.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		writeError(w, r, http.StatusBadRequest, "invalid_content_type", "uploadFailed")
		return
	}

	url, err := h.uploader.UploadImage(r.Context(), header.Filename, file, mediaType)
	if err != nil {
		slog.Error("image upload failed", "error", err, "filename", header.Filename)
		writeError(w, r, http.StatusInternalServerError, "upload_failed", "uploadFailed")
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse{URL: url})
}

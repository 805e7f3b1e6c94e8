package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/ahpc/backend/internal/locale"
	"github.com/ahpc/backend/internal/repository"
	"github.com/go-playground/validator/v10"
)

// errorResponse is the body of every non-2xx JSON response.
// Notice is the localized text shown to the visitor.
type errorResponse struct {
	Error  string            `json:"error"`
	Notice string            `json:"notice"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, noticeKey string) {
	writeJSON(w, status, errorResponse{Error: code, Notice: locale.Notice(r.Context(), noticeKey)})
}

// writeServiceError converts a service failure into a response.
// code is used for unclassified (remote) failures.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, code string) {
	switch {
	case errors.Is(err, repository.ErrNotConfigured):
		writeError(w, r, http.StatusServiceUnavailable, "not_configured", "notConfigured")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not_found", "notFound")
	default:
		slog.Error("request failed", "error", err, "code", code, "path", r.URL.Path)
		writeError(w, r, http.StatusInternalServerError, code, "somethingWentWrong")
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// On failure the response has already been written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_json", "invalidRequest")
		return false
	}
	if n, ok := dst.(normalizer); ok {
		n.normalize()
	}
	return validateRequest(w, r, dst)
}

// normalizer is implemented by request bodies that clean up their fields
// before validation.
type normalizer interface {
	normalize()
}

func validateRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalidRequest")
		return false
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  "validation_failed",
		Notice: locale.Notice(r.Context(), "fillRequired"),
		Fields: fields,
	})
	return false
}

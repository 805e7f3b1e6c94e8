package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/session"
)

// signInWait bounds how long login waits for the new session to be observed.
const signInWait = 5 * time.Second

// AuthHandler serves admin login and logout.
type AuthHandler struct{}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Loading bool        `json:"loading"`
	User    *model.User `json:"user"`
}

func sessionProvider(w http.ResponseWriter, r *http.Request) (*session.Provider, bool) {
	p, err := session.FromContext(r.Context())
	if err != nil {
		slog.Error("session provider missing", "path", r.URL.Path)
		writeError(w, r, http.StatusInternalServerError, "internal", "somethingWentWrong")
		return nil, false
	}
	return p, true
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	p, ok := sessionProvider(w, r)
	if !ok {
		return
	}
	var req loginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := p.SignIn(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		writeError(w, r, http.StatusUnauthorized, "invalid_credentials", "invalidCredentials")
		return
	case err != nil:
		writeServiceError(w, r, err, "login_failed")
		return
	}

	// the result arrives through the subscription
	ctx, cancel := context.WithTimeout(r.Context(), signInWait)
	defer cancel()
	st, err := p.Await(ctx, func(s session.State) bool { return !s.Loading && s.User != nil })
	if err != nil {
		slog.Warn("signed in but session not observed", "error", err, "client_id", p.ClientID())
	}
	writeJSON(w, http.StatusOK, sessionResponse{Loading: st.Loading, User: st.User})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	p, ok := sessionProvider(w, r)
	if !ok {
		return
	}
	if err := p.SignOut(r.Context()); err != nil {
		writeServiceError(w, r, err, "logout_failed")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{})
}

// Session handles GET /api/auth/session.
// It waits until the auth state is known.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	p, ok := sessionProvider(w, r)
	if !ok {
		return
	}
	select {
	case <-p.Ready():
	case <-r.Context().Done():
		return
	}
	st := p.State()
	writeJSON(w, http.StatusOK, sessionResponse{Loading: st.Loading, User: st.User})
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/session"
	"github.com/ahpc/backend/pkg/auth"
)

// fakeAuthBackend signs in admin@example.org / secret and notifies
// listeners synchronously.
type fakeAuthBackend struct {
	mu        sync.Mutex
	users     map[string]*model.User
	listeners map[string][]func(*model.User)
}

func newFakeAuthBackend() *fakeAuthBackend {
	return &fakeAuthBackend{
		users:     map[string]*model.User{},
		listeners: map[string][]func(*model.User){},
	}
}

func (b *fakeAuthBackend) signInDirect(clientID string, u *model.User) {
	b.mu.Lock()
	b.users[clientID] = u
	b.mu.Unlock()
}

func (b *fakeAuthBackend) SignIn(_ context.Context, clientID, email, password string) error {
	if email != "admin@example.org" || password != "secret" {
		return session.ErrInvalidCredentials
	}
	u := &model.User{ID: "u1", Email: email, Name: "Admin"}
	b.mu.Lock()
	b.users[clientID] = u
	fns := append([]func(*model.User){}, b.listeners[clientID]...)
	b.mu.Unlock()
	for _, fn := range fns {
		fn(u)
	}
	return nil
}

func (b *fakeAuthBackend) SignOut(_ context.Context, clientID string) error {
	b.mu.Lock()
	delete(b.users, clientID)
	fns := append([]func(*model.User){}, b.listeners[clientID]...)
	b.mu.Unlock()
	for _, fn := range fns {
		fn(nil)
	}
	return nil
}

func (b *fakeAuthBackend) OnAuthStateChanged(clientID string, fn func(*model.User)) func() {
	b.mu.Lock()
	b.listeners[clientID] = append(b.listeners[clientID], fn)
	u := b.users[clientID]
	b.mu.Unlock()
	fn(u)
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.listeners[clientID] = nil
	}
}

// withClient runs h with a session provider for clientID.
func withClient(backend session.Backend, clientID string, h http.HandlerFunc) http.Handler {
	inner := session.Middleware(backend)(h)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner.ServeHTTP(w, r.WithContext(auth.WithClientID(r.Context(), clientID)))
	})
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) sessionResponse {
	t.Helper()
	var resp sessionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	return resp
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthHandler_Login_Success(t *testing.T) {
	backend := newFakeAuthBackend()
	h := NewAuthHandler()

	body := `{"email":"admin@example.org","password":"secret"}`
	rec := httptest.NewRecorder()
	withClient(backend, "c1", h.Login).ServeHTTP(rec, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body: %s", rec.Code, rec.Body.String())
	}
	resp := decodeSession(t, rec)
	if resp.Loading || resp.User == nil || resp.User.Email != "admin@example.org" {
		t.Errorf("unexpected session %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response must not expose password data")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler()
	body := `{"email":"admin@example.org","password":"wrong"}`
	rec := httptest.NewRecorder()
	withClient(newFakeAuthBackend(), "c1", h.Login).ServeHTTP(rec, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error != "invalid_credentials" || resp.Notice != "Invalid email or password." {
		t.Errorf("unexpected error body %+v", resp)
	}
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	h := NewAuthHandler()
	for _, body := range []string{`{"email":"admin@example.org"}`, `{"email":"nope","password":"x"}`, `{`} {
		rec := httptest.NewRecorder()
		withClient(newFakeAuthBackend(), "c1", h.Login).ServeHTTP(rec, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_NotConfigured(t *testing.T) {
	h := NewAuthHandler()
	body := `{"email":"admin@example.org","password":"secret"}`
	rec := httptest.NewRecorder()
	withClient(nil, "c1", h.Login).ServeHTTP(rec, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != "not_configured" {
		t.Errorf("expected not_configured, got %q", resp.Error)
	}
}

func TestAuthHandler_Login_NoProvider(t *testing.T) {
	h := NewAuthHandler()
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{}`)))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Session / Logout
// ---------------------------------------------------------------------------

func TestAuthHandler_Session(t *testing.T) {
	backend := newFakeAuthBackend()
	backend.signInDirect("c1", &model.User{ID: "u1", Email: "admin@example.org"})
	h := NewAuthHandler()

	rec := httptest.NewRecorder()
	withClient(backend, "c1", h.Session).ServeHTTP(rec, httptest.NewRequest("GET", "/api/auth/session", nil))
	resp := decodeSession(t, rec)
	if resp.Loading || resp.User == nil || resp.User.ID != "u1" {
		t.Errorf("expected signed-in session, got %+v", resp)
	}

	// another client is anonymous
	rec = httptest.NewRecorder()
	withClient(backend, "c2", h.Session).ServeHTTP(rec, httptest.NewRequest("GET", "/api/auth/session", nil))
	resp = decodeSession(t, rec)
	if resp.Loading || resp.User != nil {
		t.Errorf("expected anonymous session, got %+v", resp)
	}
}

func TestAuthHandler_Session_MockMode(t *testing.T) {
	h := NewAuthHandler()
	rec := httptest.NewRecorder()
	withClient(nil, "c1", h.Session).ServeHTTP(rec, httptest.NewRequest("GET", "/api/auth/session", nil))
	resp := decodeSession(t, rec)
	if resp.Loading || resp.User != nil {
		t.Errorf("expected resolved anonymous session, got %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	backend := newFakeAuthBackend()
	backend.signInDirect("c1", &model.User{ID: "u1"})
	h := NewAuthHandler()

	rec := httptest.NewRecorder()
	withClient(backend, "c1", h.Logout).ServeHTTP(rec, httptest.NewRequest("POST", "/api/auth/logout", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resp := decodeSession(t, rec); resp.User != nil {
		t.Errorf("expected no user after logout, got %+v", resp.User)
	}

	rec = httptest.NewRecorder()
	withClient(backend, "c1", h.Session).ServeHTTP(rec, httptest.NewRequest("GET", "/api/auth/session", nil))
	if resp := decodeSession(t, rec); resp.User != nil {
		t.Errorf("expected anonymous after logout, got %+v", resp.User)
	}
}

func TestAuthHandler_Logout_MockModeNoop(t *testing.T) {
	h := NewAuthHandler()
	rec := httptest.NewRecorder()
	withClient(nil, "c1", h.Logout).ServeHTTP(rec, httptest.NewRequest("POST", "/api/auth/logout", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

func TestDashboardHandler(t *testing.T) {
	backend := newFakeAuthBackend()
	backend.signInDirect("c1", &model.User{ID: "u1", Name: "Admin"})
	svc := &mockContactService{
		countUnreadFunc: func(ctx context.Context) (int, error) { return 4, nil },
	}
	h := NewDashboardHandler(svc)

	rec := httptest.NewRecorder()
	handler := session.Middleware(backend)(session.RequireUser(AdminLoginPath)(http.HandlerFunc(h.Dashboard)))
	req := httptest.NewRequest("GET", "/api/admin/dashboard", nil)
	handler.ServeHTTP(rec, req.WithContext(auth.WithClientID(req.Context(), "c1")))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp dashboardResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.UnreadMessages != 4 || resp.User == nil || resp.User.Name != "Admin" {
		t.Errorf("unexpected dashboard %+v", resp)
	}
}

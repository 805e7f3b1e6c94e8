package session

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
)

// Decision is the outcome of the route guard.
type Decision int

const (
	// Pending: auth state not known yet.
	Pending Decision = iota
	// Redirect: nobody is signed in.
	Redirect
	// Allow: a user is signed in.
	Allow
)

// Decide maps a provider state to a guard decision.
func Decide(s State) Decision {
	switch {
	case s.Loading:
		return Pending
	case s.User == nil:
		return Redirect
	default:
		return Allow
	}
}

// LoginRedirect returns loginPath with the original destination preserved
// in the "from" query parameter.
func LoginRedirect(loginPath, from string) string {
	return loginPath + "?" + url.Values{"from": {from}}.Encode()
}

// RequireUser protects next. It waits for the auth state to resolve, then
// either serves next or answers 401 with the login redirect.
func RequireUser(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := FromContext(r.Context())
			if err != nil {
				slog.Error("route guard used without session provider", "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal"})
				return
			}

			select {
			case <-p.Ready():
			case <-r.Context().Done():
				return
			}

			if Decide(p.State()) == Allow {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":    "unauthorized",
				"redirect": LoginRedirect(loginPath, r.URL.RequestURI()),
			})
		})
	}
}

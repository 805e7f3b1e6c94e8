package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const clientIDKey contextKey = "client_id"

// ClientIDFromContext returns the client id stored in ctx.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(clientIDKey).(string)
	return v, ok && v != ""
}

// WithClientID stores id in ctx.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// ClientIdentity gives every browser a stable client id. A valid identity
// cookie is reused; otherwise a new id is minted and the cookie is set.
// Sign-in state is bound to this id, not to the cookie itself.
func ClientIdentity(secret []byte, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(ClientCookieName()); err == nil {
				if clientID, err := VerifyClientToken(cookie.Value, secret); err == nil {
					next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), clientID)))
					return
				}
			}

			clientID := uuid.NewString()
			token, err := CreateClientToken(clientID, secret, time.Now())
			if err != nil {
				slog.Error("client token signing failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     ClientCookieName(),
				Value:    token,
				Path:     "/",
				MaxAge:   int(ClientTokenTTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Secure:   secure,
			})
			next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), clientID)))
		})
	}
}

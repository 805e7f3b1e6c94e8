package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/ahpc/backend/pkg/auth"
)

// ErrNoProvider is returned when session state is requested outside a
// request wrapped by Middleware.
var ErrNoProvider = errors.New("session: no provider in context")

type contextKey struct{}

// WithProvider stores p in ctx.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the Provider stored in ctx.
func FromContext(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(contextKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	return p, nil
}

// Middleware starts a Provider for the request's client id and tears it
// down when the request ends. Must run after auth.ClientIdentity.
func Middleware(backend Backend) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID, _ := auth.ClientIDFromContext(r.Context())
			p := NewProvider(backend, clientID)
			p.Start()
			defer p.Close()
			next.ServeHTTP(w, r.WithContext(WithProvider(r.Context(), p)))
		})
	}
}

// Package session holds the sign-in state of one browser client.
//
// A Provider is a single-writer state container: only notifications from the
// auth backend change it, and every change replaces the whole State value.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/repository"
)

// ErrInvalidCredentials is returned by SignIn for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Backend is the remote authentication capability.
type Backend interface {
	SignIn(ctx context.Context, clientID, email, password string) error
	SignOut(ctx context.Context, clientID string) error
	// OnAuthStateChanged registers fn for sign-in state changes of clientID.
	// The current state is delivered once after registration, then every
	// change. fn may be called from another goroutine.
	OnAuthStateChanged(clientID string, fn func(*model.User)) (unsubscribe func())
}

// State is a snapshot of the provider.
type State struct {
	Loading bool
	User    *model.User
}

// Provider tracks the signed-in user of one client.
type Provider struct {
	backend  Backend
	clientID string

	mu          sync.Mutex
	state       State
	changed     chan struct{} // closed and replaced on every update
	ready       chan struct{}
	readyOnce   sync.Once
	unsubscribe func()
	closed      bool
}

// NewProvider returns a provider in the initial loading state. A nil backend
// means the site runs without an auth backend and nobody can sign in.
func NewProvider(backend Backend, clientID string) *Provider {
	return &Provider{
		backend:  backend,
		clientID: clientID,
		state:    State{Loading: true},
		changed:  make(chan struct{}),
		ready:    make(chan struct{}),
	}
}

// Start subscribes to auth state notifications.
func (p *Provider) Start() {
	if p.backend == nil {
		p.set(nil)
		return
	}
	unsubscribe := p.backend.OnAuthStateChanged(p.clientID, p.set)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		unsubscribe()
		return
	}
	p.unsubscribe = unsubscribe
}

// Close cancels the subscription. Later notifications are ignored.
func (p *Provider) Close() {
	p.mu.Lock()
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.closed = true
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (p *Provider) set(u *model.User) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.state = State{Loading: false, User: u}
	close(p.changed)
	p.changed = make(chan struct{})
	p.mu.Unlock()

	p.readyOnce.Do(func() { close(p.ready) })
}

// State returns the current snapshot.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Ready is closed once the first auth state is known.
func (p *Provider) Ready() <-chan struct{} {
	return p.ready
}

// Await blocks until pred holds for the current state or ctx ends.
func (p *Provider) Await(ctx context.Context, pred func(State) bool) (State, error) {
	for {
		p.mu.Lock()
		st, changed := p.state, p.changed
		p.mu.Unlock()

		if pred(st) {
			return st, nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return st, ctx.Err()
		}
	}
}

// ClientID returns the browser client this provider tracks.
func (p *Provider) ClientID() string {
	return p.clientID
}

// SignIn delegates to the backend. On success the new user arrives through
// the subscription, not through the return value.
func (p *Provider) SignIn(ctx context.Context, email, password string) error {
	if p.backend == nil {
		return repository.ErrNotConfigured
	}
	return p.backend.SignIn(ctx, p.clientID, email, password)
}

// SignOut delegates to the backend. No-op without a backend.
func (p *Provider) SignOut(ctx context.Context) error {
	if p.backend == nil {
		return nil
	}
	return p.backend.SignOut(ctx, p.clientID)
}

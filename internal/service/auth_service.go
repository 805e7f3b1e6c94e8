package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/repository"
	"github.com/ahpc/backend/internal/session"
	"github.com/ahpc/backend/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is enforced when admin passwords are set.
const MinPasswordLength = 8

// ErrWeakPassword is returned by CreateAdmin and ResetPassword.
var ErrWeakPassword = fmt.Errorf("password must be at least %d characters", MinPasswordLength)

// subscriber is one OnAuthStateChanged registration. version is bumped by
// every publish and guarded by AuthService.mu. Deliveries are serialized by
// deliverMu and results older than version are dropped.
type subscriber struct {
	fn      func(*model.User)
	version uint64

	deliverMu sync.Mutex
	delivered bool
}

// AuthService signs admins in with a password and keeps one session per
// client. It implements session.Backend.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	ttl      time.Duration
	now      func() time.Time

	mu     sync.Mutex
	subs   map[string]map[int]*subscriber
	nextID int
}

var _ session.Backend = (*AuthService)(nil)

// NewAuthService creates an AuthService.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		ttl:      auth.ClientTokenTTL,
		now:      time.Now,
		subs:     make(map[string]map[int]*subscriber),
	}
}

// SignIn checks the password and binds clientID to the user.
func (s *AuthService) SignIn(ctx context.Context, clientID, email, password string) error {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		slog.Info("sign in failed: unknown email", "client_id", clientID)
		return session.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		slog.Info("sign in failed: wrong password", "client_id", clientID, "user_id", u.ID)
		return session.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.sessions.Upsert(ctx, &model.Session{
		ClientID:  clientID,
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	slog.Info("admin signed in", "user_id", u.ID, "client_id", clientID)
	s.publish(clientID, u)
	return nil
}

// SignOut drops the session of clientID.
func (s *AuthService) SignOut(ctx context.Context, clientID string) error {
	if err := s.sessions.DeleteByClientID(ctx, clientID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.publish(clientID, nil)
	return nil
}

// CurrentUser returns the user bound to clientID, or nil.
func (s *AuthService) CurrentUser(ctx context.Context, clientID string) (*model.User, error) {
	sess, err := s.sessions.FindByClientID(ctx, clientID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, sess.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// OnAuthStateChanged registers fn for clientID. The current state is looked
// up and delivered asynchronously unless a change is published first.
func (s *AuthService) OnAuthStateChanged(clientID string, fn func(*model.User)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	if s.subs[clientID] == nil {
		s.subs[clientID] = make(map[int]*subscriber)
	}
	sub := &subscriber{fn: fn}
	s.subs[clientID][id] = sub
	start := sub.version
	s.mu.Unlock()

	go func() {
		u, err := s.CurrentUser(context.Background(), clientID)
		if err != nil {
			// treat lookup failures as signed out
			slog.Error("load session failed", "error", err, "client_id", clientID)
			u = nil
		}
		s.deliver(clientID, id, sub, start, u, true)
	}()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[clientID], id)
		if len(s.subs[clientID]) == 0 {
			delete(s.subs, clientID)
		}
	}
}

// deliver calls sub.fn with u unless sub was unsubscribed or a newer
// publish than version exists. An initial delivery is also skipped once
// anything was delivered.
func (s *AuthService) deliver(clientID string, id int, sub *subscriber, version uint64, u *model.User, initial bool) {
	sub.deliverMu.Lock()
	defer sub.deliverMu.Unlock()

	s.mu.Lock()
	_, active := s.subs[clientID][id]
	stale := sub.version != version
	s.mu.Unlock()
	if !active || stale || (initial && sub.delivered) {
		return
	}
	sub.delivered = true
	sub.fn(u)
}

func (s *AuthService) publish(clientID string, u *model.User) {
	type pending struct {
		id      int
		sub     *subscriber
		version uint64
	}
	s.mu.Lock()
	targets := make([]pending, 0, len(s.subs[clientID]))
	for id, sub := range s.subs[clientID] {
		sub.version++
		targets = append(targets, pending{id: id, sub: sub, version: sub.version})
	}
	s.mu.Unlock()

	for _, t := range targets {
		s.deliver(clientID, t.id, t.sub, t.version, u, false)
	}
}

// CreateAdmin adds an admin account.
func (s *AuthService) CreateAdmin(ctx context.Context, email, name, password string) (*model.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	slog.Info("admin created", "user_id", u.ID)
	return u, nil
}

// ResetPassword replaces the password of the admin with the given email.
func (s *AuthService) ResetPassword(ctx context.Context, email, password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	slog.Info("admin password reset", "user_id", u.ID)
	return nil
}

func hashPassword(password string) (string, error) {
	if len([]rune(password)) < MinPasswordLength {
		return "", ErrWeakPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

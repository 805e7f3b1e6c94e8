package repository

import (
	"context"

	"github.com/ahpc/backend/internal/model"
)

// DB is the liveness check used by the health endpoint.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository persists admin accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// SessionRepository binds browser clients to signed-in users.
type SessionRepository interface {
	Upsert(ctx context.Context, s *model.Session) error
	// FindByClientID returns ErrNotFound when no unexpired session exists.
	FindByClientID(ctx context.Context, clientID string) (*model.Session, error)
	DeleteByClientID(ctx context.Context, clientID string) error
}

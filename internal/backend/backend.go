// Package backend wires the document store, blob store and auth capability
// once per process. In mock mode every capability is replaced by its static
// stand-in, so nothing above this package branches on configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ahpc/backend/internal/config"
	"github.com/ahpc/backend/internal/repository"
	"github.com/ahpc/backend/internal/service"
	"github.com/ahpc/backend/internal/session"
	"github.com/ahpc/backend/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Backend holds the process-wide capability handles.
type Backend struct {
	// Pool and Auth are nil in mock mode.
	Pool *pgxpool.Pool
	Auth *service.AuthService

	Activities repository.ActivityRepository
	Gallery    repository.GalleryRepository
	Contacts   repository.ContactRepository
	Storage    storage.Storage

	configured bool
}

// New initialises the backend for cfg.
func New(ctx context.Context, cfg config.Config) (*Backend, error) {
	if cfg.MockMode() {
		slog.Warn("backend not configured, running with sample data; writes are disabled")
		return &Backend{
			Activities: repository.NewMockActivityRepository(),
			Gallery:    repository.NewMockGalleryRepository(),
			Contacts:   repository.NewMockContactRepository(),
			Storage:    storage.PlaceholderStorage{},
		}, nil
	}

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	users := repository.NewPgUserRepository(pool)
	dir, prefix := uploadLocation(cfg)
	slog.Info("backend configured", "project_id", cfg.ProjectID, "upload_dir", dir)

	return &Backend{
		Pool:       pool,
		Auth:       service.NewAuthService(users, repository.NewPgSessionRepository(pool)),
		Activities: repository.NewPgActivityRepository(pool),
		Gallery:    repository.NewPgGalleryRepository(pool),
		Contacts:   repository.NewPgContactRepository(pool),
		Storage:    storage.NewLocalStorage(dir, prefix),
		configured: true,
	}, nil
}

// uploadLocation namespaces uploads by storage bucket when one is set.
func uploadLocation(cfg config.Config) (dir, prefix string) {
	dir = cfg.UploadDir
	prefix = strings.TrimRight(cfg.UploadURLPrefix, "/")
	if b := strings.Trim(cfg.StorageBucket, "/"); b != "" {
		dir = filepath.Join(dir, filepath.FromSlash(b))
		prefix = prefix + "/" + b
	}
	return dir, prefix
}

// Configured reports whether real credentials were supplied.
func (b *Backend) Configured() bool {
	return b.configured
}

// SessionBackend returns the auth capability, or nil in mock mode.
func (b *Backend) SessionBackend() session.Backend {
	if b.Auth == nil {
		return nil
	}
	return b.Auth
}

// DB returns the store for health checks, or nil in mock mode.
func (b *Backend) DB() repository.DB {
	if b.Pool == nil {
		return nil
	}
	return b.Pool
}

// Close releases the pool.
func (b *Backend) Close() {
	if b.Pool != nil {
		b.Pool.Close()
	}
}

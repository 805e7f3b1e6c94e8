package service

import (
	"context"
	"log/slog"

	"github.com/ahpc/backend/internal/storage"
)

// removeBlob deletes the stored file behind url. URLs the store did not
// issue (placeholders, external links) are left alone. Failures are logged
// only; the record change has already been committed.
func removeBlob(ctx context.Context, store storage.Storage, url string) {
	if url == "" {
		return
	}
	key, ok := store.KeyFromURL(url)
	if !ok {
		return
	}
	if err := store.Delete(ctx, key); err != nil {
		slog.Warn("remove image failed", "key", key, "error", err)
	}
}

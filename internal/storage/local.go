package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps uploads on the local filesystem.
type LocalStorage struct {
	baseDir   string // root directory on disk, e.g. "./uploads/ahpc"
	urlPrefix string // URL prefix the files are served under, e.g. "/uploads"
}

// NewLocalStorage creates a LocalStorage.
func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

var _ Storage = (*LocalStorage)(nil)

func (s *LocalStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	dest, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}

	return s.urlPrefix + "/" + escapeKey(key), nil
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	dest, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(dest); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}

// KeyFromURL returns the key behind a URL returned by Save, or false when
// the URL does not belong to this store.
func (s *LocalStorage) KeyFromURL(rawURL string) (string, bool) {
	escaped, ok := strings.CutPrefix(rawURL, s.urlPrefix+"/")
	if !ok || escaped == "" {
		return "", false
	}
	key, err := url.PathUnescape(escaped)
	if err != nil {
		return "", false
	}
	return key, true
}

// escapeKey escapes each path segment of key for use in a URL.
// Names on disk stay raw.
func escapeKey(key string) string {
	segs := strings.Split(key, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return strings.Join(segs, "/")
}

// resolve maps key to a path inside baseDir, rejecting traversal.
func (s *LocalStorage) resolve(key string) (string, error) {
	absDir, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("storage: base dir: %w", err)
	}
	dest := filepath.Join(absDir, filepath.FromSlash(key))
	if !strings.HasPrefix(dest, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return dest, nil
}

package storage

import (
	"context"
	"io"
)

// PlaceholderURL is returned for every upload while the backend is not configured.
const PlaceholderURL = "/placeholder.jpg"

// PlaceholderStorage is the mock-mode Storage. Uploads succeed without
// storing anything and always resolve to PlaceholderURL.
type PlaceholderStorage struct{}

var _ Storage = PlaceholderStorage{}

func (PlaceholderStorage) Save(context.Context, string, io.Reader, string) (string, error) {
	return PlaceholderURL, nil
}

func (PlaceholderStorage) Delete(context.Context, string) error {
	return nil
}

// KeyFromURL always reports false; nothing is stored behind PlaceholderURL.
func (PlaceholderStorage) KeyFromURL(string) (string, bool) {
	return "", false
}

package storage

import (
	"context"
	"io"
	"path"
	"strconv"
	"time"
)

// Storage stores uploaded images. LocalStorage is used when the backend is
// configured, PlaceholderStorage otherwise.
type Storage interface {
	// Save stores data under key and returns its public URL.
	// key is unique within the store, e.g. "activities/1718000000000_camp.jpg".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a URL returned by Save back to its key.
	// ok is false for URLs this store did not issue.
	KeyFromURL(url string) (key string, ok bool)
}

// Upload folders.
const (
	FolderActivities = "activities"
	FolderGallery    = "gallery"
)

// ObjectKey namespaces an upload under folder and prefixes the original file
// name with the submission time in milliseconds, e.g.
// "gallery/1718000000000_camp.jpg". Directory components of filename are
// dropped.
func ObjectKey(folder, filename string, now time.Time) string {
	base := path.Base(filename)
	if base == "." || base == "/" {
		base = "upload"
	}
	return folder + "/" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + base
}

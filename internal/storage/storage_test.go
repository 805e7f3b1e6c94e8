package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1718000000123)

	assert.Equal(t, "activities/1718000000123_camp.jpg", ObjectKey(FolderActivities, "camp.jpg", now))
	assert.Equal(t, "gallery/1718000000123_photo.png", ObjectKey(FolderGallery, "../../etc/photo.png", now))
	assert.Equal(t, "gallery/1718000000123_upload", ObjectKey(FolderGallery, "", now))
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads/")
	ctx := context.Background()

	url, err := s.Save(ctx, "gallery/1_a.jpg", strings.NewReader("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/gallery/1_a.jpg", url)

	b, err := os.ReadFile(filepath.Join(dir, "gallery", "1_a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(b))

	key, ok := s.KeyFromURL(url)
	require.True(t, ok)
	assert.Equal(t, "gallery/1_a.jpg", key)

	require.NoError(t, s.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, "gallery", "1_a.jpg"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, key))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")

	_, err := s.Save(context.Background(), "../escape.jpg", strings.NewReader("x"), "image/jpeg")
	assert.Error(t, err)
}

func TestLocalStorage_KeyFromForeignURL(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")

	_, ok := s.KeyFromURL("https://cdn.example.com/a.jpg")
	assert.False(t, ok)
	_, ok = s.KeyFromURL(PlaceholderURL)
	assert.False(t, ok)
	_, ok = s.KeyFromURL("/uploads/gallery/1_%zz.jpg")
	assert.False(t, ok)
}

func TestPlaceholderStorage(t *testing.T) {
	var s Storage = PlaceholderStorage{}

	url, err := s.Save(context.Background(), "activities/1_a.jpg", strings.NewReader("x"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderURL, url)
	assert.NoError(t, s.Delete(context.Background(), "activities/1_a.jpg"))
	_, ok := s.KeyFromURL(url)
	assert.False(t, ok)
}

func TestLocalStorage_EscapesURL(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads")
	ctx := context.Background()

	cases := map[string]string{
		"gallery/1_camp#1.jpg":     "/uploads/gallery/1_camp%231.jpg",
		"gallery/1_what?.jpg":      "/uploads/gallery/1_what%3F.jpg",
		"gallery/1_50%off.jpg":     "/uploads/gallery/1_50%25off.jpg",
		"activities/1_eid day.jpg": "/uploads/activities/1_eid%20day.jpg",
	}
	for key, want := range cases {
		url, err := s.Save(ctx, key, strings.NewReader("x"), "image/jpeg")
		require.NoError(t, err)
		assert.Equal(t, want, url)

		// the file on disk keeps the raw name
		_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
		assert.NoError(t, err)

		got, ok := s.KeyFromURL(url)
		require.True(t, ok)
		assert.Equal(t, key, got)
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/repository"
	"github.com/ahpc/backend/internal/storage"
)

// GalleryService provides business logic for the photo gallery.
// Images are added and removed, never edited.
type GalleryService interface {
	// List returns images newest first. Limit <= 0 returns all.
	List(ctx context.Context, opts model.GalleryListOptions) ([]*model.GalleryImage, error)
	// Get returns nil, nil when the image does not exist.
	Get(ctx context.Context, id string) (*model.GalleryImage, error)
	Create(ctx context.Context, in model.GalleryImageInput) (string, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, filename string, data io.Reader, contentType string) (string, error)
}

type galleryService struct {
	repo  repository.GalleryRepository
	store storage.Storage
	now   func() time.Time
}

// NewGalleryService creates a GalleryService.
func NewGalleryService(repo repository.GalleryRepository, store storage.Storage) GalleryService {
	return &galleryService{repo: repo, store: store, now: time.Now}
}

func (s *galleryService) List(ctx context.Context, opts model.GalleryListOptions) ([]*model.GalleryImage, error) {
	return s.repo.List(ctx, opts)
}

func (s *galleryService) Get(ctx context.Context, id string) (*model.GalleryImage, error) {
	img, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s *galleryService) Create(ctx context.Context, in model.GalleryImageInput) (string, error) {
	img := &model.GalleryImage{
		URL:       in.URL,
		Caption:   in.Caption,
		Category:  in.Category,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, img); err != nil {
		return "", fmt.Errorf("create gallery image: %w", err)
	}
	return img.ID, nil
}

// Delete removes the record and then the uploaded file it points at.
func (s *galleryService) Delete(ctx context.Context, id string) error {
	img, err := s.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if img != nil {
		removeBlob(ctx, s.store, img.URL)
	}
	return nil
}

func (s *galleryService) UploadImage(ctx context.Context, filename string, data io.Reader, contentType string) (string, error) {
	key := storage.ObjectKey(storage.FolderGallery, filename, s.now())
	url, err := s.store.Save(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload gallery image: %w", err)
	}
	return url, nil
}

package repository

import (
	"context"

	"github.com/ahpc/backend/internal/model"
)

// GalleryRepository handles persistence for the gallery collection.
// Gallery images are create/delete only.
type GalleryRepository interface {
	// List returns images ordered by creation time, newest first.
	List(ctx context.Context, opts model.GalleryListOptions) ([]*model.GalleryImage, error)
	// Get returns ErrNotFound when the id does not exist.
	Get(ctx context.Context, id string) (*model.GalleryImage, error)
	// Insert assigns img.ID and stores the image record.
	Insert(ctx context.Context, img *model.GalleryImage) error
	Delete(ctx context.Context, id string) error
}

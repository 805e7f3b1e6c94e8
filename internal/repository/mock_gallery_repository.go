package repository

import (
	"context"

	"github.com/ahpc/backend/internal/model"
)

// MockGalleryRepository serves a fixed sample gallery while the backend is
// not configured. Writes fail with ErrNotConfigured.
type MockGalleryRepository struct{}

// NewMockGalleryRepository returns the mock-mode GalleryRepository.
func NewMockGalleryRepository() *MockGalleryRepository {
	return &MockGalleryRepository{}
}

var _ GalleryRepository = (*MockGalleryRepository)(nil)

func (r *MockGalleryRepository) List(_ context.Context, opts model.GalleryListOptions) ([]*model.GalleryImage, error) {
	var images []*model.GalleryImage
	c := categoryFilter(opts.Category)
	for _, img := range mockGalleryImages() {
		if c != "" && img.Category != c {
			continue
		}
		images = append(images, img)
	}
	if opts.Limit > 0 && len(images) > opts.Limit {
		images = images[:opts.Limit]
	}
	return images, nil
}

func (r *MockGalleryRepository) Get(_ context.Context, id string) (*model.GalleryImage, error) {
	for _, img := range mockGalleryImages() {
		if img.ID == id {
			return img, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MockGalleryRepository) Insert(context.Context, *model.GalleryImage) error {
	return ErrNotConfigured
}

func (r *MockGalleryRepository) Delete(context.Context, string) error {
	return ErrNotConfigured
}

func mockGalleryImages() []*model.GalleryImage {
	return []*model.GalleryImage{
		{ID: "1", URL: PlaceholderImageURL, Caption: "Children at summer camp", Category: model.GalleryCategoryActivities},
		{ID: "2", URL: PlaceholderImageURL, Caption: "Education session", Category: model.GalleryCategoryEducation},
		{ID: "3", URL: PlaceholderImageURL, Caption: "Health check-up day", Category: model.GalleryCategoryHealthcare},
		{ID: "4", URL: PlaceholderImageURL, Caption: "Community gathering", Category: model.GalleryCategoryEvents},
		{ID: "5", URL: PlaceholderImageURL, Caption: "Art workshop", Category: model.GalleryCategoryActivities},
		{ID: "6", URL: PlaceholderImageURL, Caption: "Distribution day", Category: model.GalleryCategoryShelter},
	}
}

package model

import "time"

// Gallery categories.
const (
	GalleryCategoryActivities = "activities"
	GalleryCategoryEducation  = "education"
	GalleryCategoryHealthcare = "healthcare"
	GalleryCategoryShelter    = "shelter"
	GalleryCategoryEvents     = "events"
)

var galleryCategories = map[string]bool{
	GalleryCategoryActivities: true,
	GalleryCategoryEducation:  true,
	GalleryCategoryHealthcare: true,
	GalleryCategoryShelter:    true,
	GalleryCategoryEvents:     true,
}

// IsGalleryCategory reports whether c is one of the fixed gallery categories.
func IsGalleryCategory(c string) bool {
	return galleryCategories[c]
}

// GalleryImage is a photo shown in the public gallery.
type GalleryImage struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryImageInput carries the fields of a new gallery image.
type GalleryImageInput struct {
	URL      string
	Caption  string
	Category string
}

// GalleryListOptions carries filter and page size for listing gallery images.
// Limit <= 0 returns every matching image.
type GalleryListOptions struct {
	Category string
	Limit    int
}

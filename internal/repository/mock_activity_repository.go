package repository

import (
	"context"

	"github.com/ahpc/backend/internal/model"
)

// MockActivityRepository serves a fixed sample dataset while the backend is
// not configured. Writes fail with ErrNotConfigured.
type MockActivityRepository struct{}

// NewMockActivityRepository returns the mock-mode ActivityRepository.
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

var _ ActivityRepository = (*MockActivityRepository)(nil)

func (r *MockActivityRepository) List(_ context.Context, opts model.ActivityListOptions) ([]*model.Activity, error) {
	var items []*model.Activity
	c := categoryFilter(opts.Category)
	for _, a := range mockActivities() {
		if c != "" && a.Category != c {
			continue
		}
		items = append(items, a)
	}
	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items, nil
}

func (r *MockActivityRepository) Get(_ context.Context, id string) (*model.Activity, error) {
	for _, a := range mockActivities() {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MockActivityRepository) Insert(context.Context, *model.Activity) error {
	return ErrNotConfigured
}

func (r *MockActivityRepository) Update(context.Context, string, model.ActivityPatch) error {
	return ErrNotConfigured
}

func (r *MockActivityRepository) Delete(context.Context, string) error {
	return ErrNotConfigured
}

// mockActivities returns a fresh copy of the sample dataset, newest first.
func mockActivities() []*model.Activity {
	return []*model.Activity{
		{
			ID:               "1",
			Title:            "Summer Education Camp 2024",
			Date:             "2024-07-15",
			Category:         model.ActivityCategoryEducation,
			ShortDescription: "A two-week camp providing educational support and activities for 50 orphan children.",
			FullDescription:  "Our summer education camp brought together 50 orphan children for two weeks of learning, creativity, and fun. Activities included tutoring, arts and crafts, sports, and field trips.",
			ImageURL:         PlaceholderImageURL,
			Published:        true,
		},
		{
			ID:               "2",
			Title:            "Health Check-up Day",
			Date:             "2024-06-20",
			Category:         model.ActivityCategoryHealthcare,
			ShortDescription: "Free medical check-ups and vaccinations for children in the community.",
			FullDescription:  "Partnering with local healthcare providers, we organized a comprehensive health check-up day. Over 80 children received vaccinations and general health assessments.",
			ImageURL:         PlaceholderImageURL,
			Published:        true,
		},
		{
			ID:               "3",
			Title:            "Winter Clothing Distribution",
			Date:             "2024-01-10",
			Category:         model.ActivityCategoryShelter,
			ShortDescription: "Distributed warm clothing and blankets to 100 families.",
			FullDescription:  "Thanks to generous donations, we distributed winter clothing, blankets, and essential supplies to 100 families in need during the cold winter months.",
			ImageURL:         PlaceholderImageURL,
			Published:        true,
		},
	}
}

// PlaceholderImageURL is the image reference used by the sample datasets.
const PlaceholderImageURL = "/placeholder.jpg"

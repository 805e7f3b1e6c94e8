package model

import "time"

// Activity categories.
const (
	ActivityCategoryEducation  = "education"
	ActivityCategoryHealthcare = "healthcare"
	ActivityCategoryShelter    = "shelter"
	ActivityCategoryFood       = "food"
)

// CategoryAll is the list filter value that disables category filtering.
const CategoryAll = "all"

var activityCategories = map[string]bool{
	ActivityCategoryEducation:  true,
	ActivityCategoryHealthcare: true,
	ActivityCategoryShelter:    true,
	ActivityCategoryFood:       true,
}

// IsActivityCategory reports whether c is one of the fixed activity categories.
func IsActivityCategory(c string) bool {
	return activityCategories[c]
}

// Activity is one entry of the activities feed.
type Activity struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Date             string    `json:"date"` // YYYY-MM-DD
	Category         string    `json:"category"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description"`
	ImageURL         string    `json:"image_url"`
	CreatedAt        time.Time `json:"created_at"`
	Published        bool      `json:"published"`
}

// ActivityInput carries the fields of a new activity.
// Published defaults to true when nil.
type ActivityInput struct {
	Title            string
	Date             string
	Category         string
	ShortDescription string
	FullDescription  string
	ImageURL         string
	Published        *bool
}

// ActivityPatch is a partial update. Nil fields are left unchanged.
type ActivityPatch struct {
	Title            *string
	Date             *string
	Category         *string
	ShortDescription *string
	FullDescription  *string
	ImageURL         *string
	Published        *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ActivityPatch) IsEmpty() bool {
	return p.Title == nil && p.Date == nil && p.Category == nil &&
		p.ShortDescription == nil && p.FullDescription == nil &&
		p.ImageURL == nil && p.Published == nil
}

// ActivityListOptions carries filter and page size for listing activities.
type ActivityListOptions struct {
	// Category filters by category. Empty string and "all" return every category.
	Category string
	Limit    int
}

package repository

import (
	"context"

	"github.com/ahpc/backend/internal/model"
)

// ActivityRepository handles persistence for the activities collection.
type ActivityRepository interface {
	// List returns activities ordered by date, newest first.
	// Limit <= 0 returns every matching activity.
	List(ctx context.Context, opts model.ActivityListOptions) ([]*model.Activity, error)
	// Get returns ErrNotFound when the id does not exist.
	Get(ctx context.Context, id string) (*model.Activity, error)
	// Insert assigns a.ID and stores the activity.
	Insert(ctx context.Context, a *model.Activity) error
	Update(ctx context.Context, id string, patch model.ActivityPatch) error
	Delete(ctx context.Context, id string) error
}

// categoryFilter returns the category to filter by, or "" for no filter.
func categoryFilter(c string) string {
	if c == model.CategoryAll {
		return ""
	}
	return c
}

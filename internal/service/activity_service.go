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

// Activity feed page sizes.
const (
	DefaultActivityPageSize = 9
	MaxActivityPageSize     = 50
	DefaultLatestCount      = 3
)

// ActivityService provides business logic for the activity feed.
type ActivityService interface {
	// List returns one page of activities, newest first.
	// Limit <= 0 uses DefaultActivityPageSize; it is capped at MaxActivityPageSize.
	List(ctx context.Context, opts model.ActivityListOptions) ([]*model.Activity, error)
	// Latest returns the count newest activities (DefaultLatestCount when count <= 0).
	Latest(ctx context.Context, count int) ([]*model.Activity, error)
	// Get returns nil, nil when the activity does not exist.
	Get(ctx context.Context, id string) (*model.Activity, error)
	// Create stores a new activity and returns its id.
	Create(ctx context.Context, in model.ActivityInput) (string, error)
	Update(ctx context.Context, id string, patch model.ActivityPatch) error
	Delete(ctx context.Context, id string) error
	// UploadImage stores an activity image and returns its public URL.
	UploadImage(ctx context.Context, filename string, data io.Reader, contentType string) (string, error)
}

type activityService struct {
	repo  repository.ActivityRepository
	store storage.Storage
	now   func() time.Time
}

// NewActivityService creates an ActivityService.
func NewActivityService(repo repository.ActivityRepository, store storage.Storage) ActivityService {
	return &activityService{repo: repo, store: store, now: time.Now}
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func (s *activityService) List(ctx context.Context, opts model.ActivityListOptions) ([]*model.Activity, error) {
	opts.Limit = clampLimit(opts.Limit, DefaultActivityPageSize, MaxActivityPageSize)
	return s.repo.List(ctx, opts)
}

func (s *activityService) Latest(ctx context.Context, count int) ([]*model.Activity, error) {
	count = clampLimit(count, DefaultLatestCount, MaxActivityPageSize)
	return s.repo.List(ctx, model.ActivityListOptions{Limit: count})
}

func (s *activityService) Get(ctx context.Context, id string) (*model.Activity, error) {
	a, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *activityService) Create(ctx context.Context, in model.ActivityInput) (string, error) {
	published := true
	if in.Published != nil {
		published = *in.Published
	}
	a := &model.Activity{
		Title:            in.Title,
		Date:             in.Date,
		Category:         in.Category,
		ShortDescription: in.ShortDescription,
		FullDescription:  in.FullDescription,
		ImageURL:         in.ImageURL,
		Published:        published,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return "", fmt.Errorf("create activity: %w", err)
	}
	return a.ID, nil
}

// Update applies patch. A replaced image_url drops the previous upload.
func (s *activityService) Update(ctx context.Context, id string, patch model.ActivityPatch) error {
	var old *model.Activity
	if patch.ImageURL != nil {
		a, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		old = a
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	if old != nil && old.ImageURL != *patch.ImageURL {
		removeBlob(ctx, s.store, old.ImageURL)
	}
	return nil
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	a, err := s.repo.Get(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if a != nil {
		removeBlob(ctx, s.store, a.ImageURL)
	}
	return nil
}

func (s *activityService) UploadImage(ctx context.Context, filename string, data io.Reader, contentType string) (string, error) {
	key := storage.ObjectKey(storage.FolderActivities, filename, s.now())
	url, err := s.store.Save(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("upload activity image: %w", err)
	}
	return url, nil
}

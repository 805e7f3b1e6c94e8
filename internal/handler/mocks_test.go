package handler

import (
	"context"
	"io"

	"github.com/ahpc/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock services
// ---------------------------------------------------------------------------

type mockActivityService struct {
	listFunc   func(ctx context.Context, opts model.ActivityListOptions) ([]*model.Activity, error)
	latestFunc func(ctx context.Context, count int) ([]*model.Activity, error)
	getFunc    func(ctx context.Context, id string) (*model.Activity, error)
	createFunc func(ctx context.Context, in model.ActivityInput) (string, error)
	updateFunc func(ctx context.Context, id string, patch model.ActivityPatch) error
	deleteFunc func(ctx context.Context, id string) error
	uploadFunc func(ctx context.Context, filename string, data io.Reader, contentType string) (string, error)
}

func (m *mockActivityService) List(ctx context.Context, opts model.ActivityListOptions) ([]*model.Activity, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockActivityService) Latest(ctx context.Context, count int) ([]*model.Activity, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, count)
	}
	return nil, nil
}
func (m *mockActivityService) Get(ctx context.Context, id string) (*model.Activity, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockActivityService) Create(ctx context.Context, in model.ActivityInput) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return "", nil
}
func (m *mockActivityService) Update(ctx context.Context, id string, patch model.ActivityPatch) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil
}
func (m *mockActivityService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}
func (m *mockActivityService) UploadImage(ctx context.Context, filename string, data io.Reader, contentType string) (string, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, filename, data, contentType)
	}
	return "", nil
}

type mockGalleryService struct {
	listFunc   func(ctx context.Context, opts model.GalleryListOptions) ([]*model.GalleryImage, error)
	getFunc    func(ctx context.Context, id string) (*model.GalleryImage, error)
	createFunc func(ctx context.Context, in model.GalleryImageInput) (string, error)
	deleteFunc func(ctx context.Context, id string) error
	uploadFunc func(ctx context.Context, filename string, data io.Reader, contentType string) (string, error)
}

func (m *mockGalleryService) List(ctx context.Context, opts model.GalleryListOptions) ([]*model.GalleryImage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockGalleryService) Get(ctx context.Context, id string) (*model.GalleryImage, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockGalleryService) Create(ctx context.Context, in model.GalleryImageInput) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return "", nil
}
func (m *mockGalleryService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}
func (m *mockGalleryService) UploadImage(ctx context.Context, filename string, data io.Reader, contentType string) (string, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, filename, data, contentType)
	}
	return "", nil
}

type mockContactService struct {
	submitFunc      func(ctx context.Context, in model.ContactInput) (string, error)
	listFunc        func(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	getFunc         func(ctx context.Context, id string) (*model.ContactMessage, error)
	markReadFunc    func(ctx context.Context, id string) error
	deleteFunc      func(ctx context.Context, id string) error
	countUnreadFunc func(ctx context.Context) (int, error)
}

func (m *mockContactService) Submit(ctx context.Context, in model.ContactInput) (string, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return "", nil
}
func (m *mockContactService) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}
func (m *mockContactService) Get(ctx context.Context, id string) (*model.ContactMessage, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockContactService) MarkRead(ctx context.Context, id string) error {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil
}
func (m *mockContactService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}
func (m *mockContactService) CountUnread(ctx context.Context) (int, error) {
	if m.countUnreadFunc != nil {
		return m.countUnreadFunc(ctx)
	}
	return 0, nil
}

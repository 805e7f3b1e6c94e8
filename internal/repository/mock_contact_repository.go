package repository

import (
	"context"
	"log/slog"

	"github.com/ahpc/backend/internal/model"
)

// MockContactRepository stands in for the contact inbox while the backend is
// not configured. Submissions are dropped (not an error), the inbox is
// always empty, marking as read is a no-op and deleting fails.
type MockContactRepository struct{}

// NewMockContactRepository returns the mock-mode ContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

var _ ContactRepository = (*MockContactRepository)(nil)

// Save leaves msg.ID empty and does not store the message.
func (r *MockContactRepository) Save(_ context.Context, msg *model.ContactMessage) error {
	slog.Warn("backend not configured, contact message not saved", "email", msg.Email)
	msg.ID = ""
	return nil
}

func (r *MockContactRepository) List(context.Context, model.ContactListOptions) ([]*model.ContactMessage, error) {
	return nil, nil
}

func (r *MockContactRepository) Get(context.Context, string) (*model.ContactMessage, error) {
	return nil, ErrNotFound
}

func (r *MockContactRepository) MarkRead(context.Context, string) error {
	return nil
}

func (r *MockContactRepository) Delete(context.Context, string) error {
	return ErrNotConfigured
}

func (r *MockContactRepository) CountUnread(context.Context) (int, error) {
	return 0, nil
}

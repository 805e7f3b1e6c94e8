package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahpc/backend/internal/model"
	"github.com/ahpc/backend/internal/notify"
	"github.com/ahpc/backend/internal/repository"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new message as unread and returns its id. The id is
	// empty when the backend is not configured.
	Submit(ctx context.Context, in model.ContactInput) (string, error)
	// List returns contact messages according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	// Get returns nil, nil when the message does not exist.
	Get(ctx context.Context, id string) (*model.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int, error)
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
	now      func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
// notifier may be nil.
func NewContactService(repo repository.ContactRepository, notifier notify.Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier, now: time.Now}
}

// Submit sets Read=false and CreatedAt before persisting.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput) (string, error) {
	msg := &model.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Read:      false,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return "", fmt.Errorf("save contact message: %w", err)
	}
	if msg.ID != "" && s.notifier != nil {
		s.notifier.ContactReceived(ctx, msg)
	}
	return msg.ID, nil
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) Get(ctx context.Context, id string) (*model.ContactMessage, error) {
	msg, err := s.repo.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *contactServiceImpl) CountUnread(ctx context.Context) (int, error) {
	return s.repo.CountUnread(ctx)
}

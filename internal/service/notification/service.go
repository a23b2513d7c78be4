// Package notification implements the in-app notification inbox and the
// asynchronous dispatcher that fills it.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/pkg/ctxutil"
)

type notificationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, int, int, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id string, at time.Time) error
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int, error)
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Service provides inbox operations for the authenticated user.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
	now           func() time.Time
}

// NewService creates a new notification inbox service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Inbox is one page of a user's notifications.
type Inbox struct {
	Items  []domain.Notification
	Total  int
	Unread int
}

// ListMine returns the caller's notifications, newest first.
func (s *Service) ListMine(ctx context.Context, limit, offset int) (*Inbox, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, total, unread, err := s.notifications.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return &Inbox{Items: items, Total: total, Unread: unread}, nil
}

// MarkRead marks one of the caller's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == "" {
		return domain.NewValidationError("id", "required")
	}

	if err := s.notifications.MarkRead(ctx, userID, id, s.now()); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks all of the caller's notifications as read.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.notifications.MarkAllRead(ctx, userID, s.now())
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return n, nil
}

// PurgeRead deletes notifications read more than retention ago.
func (s *Service) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, domain.NewValidationError("retention", "must be positive")
	}

	deleted, err := s.notifications.DeleteReadBefore(ctx, s.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("purge read notifications: %w", err)
	}

	s.log.InfoContext(ctx, "read notifications purged", slog.Int64("deleted", deleted))
	return deleted, nil
}

// Package user implements profile and administrative user operations.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, params domain.ProfileUpdateParams) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
	CountUsers(ctx context.Context, role *domain.UserRole) (int, error)
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile and admin operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditRepo
	tx    txManager
	now   func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
		tx:    tx,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

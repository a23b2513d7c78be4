// Package offering implements the offering store operations: creating,
// reading, listing and updating activities and trainings.
package offering

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/pkg/ctxutil"
)

type offeringRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Offering, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Offering, error)
	List(ctx context.Context, f domain.OfferingFilter) ([]domain.Offering, int, error)
	Create(ctx context.Context, o domain.Offering) (*domain.Offering, error)
	Update(ctx context.Context, o domain.Offering) (*domain.Offering, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pagination bounds for List.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Service provides offering operations.
type Service struct {
	offerings offeringRepo
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new offering service.
func NewService(log *slog.Logger, offerings offeringRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		offerings: offerings,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "offering"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new offering owned by the caller (organizer or admin).
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Offering, error) {
	actorID, role, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if role != domain.UserRoleOrganizer && role != domain.UserRoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	o := input.toOffering(actorID, now)

	var created *domain.Offering
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.offerings.Create(ctx, o)
		if err != nil {
			return fmt.Errorf("create offering: %w", err)
		}
		return s.logAudit(ctx, actorID, created.ID, domain.AuditActionCreate, map[string]any{
			"kind":     created.Kind,
			"title":    created.Title,
			"capacity": created.Capacity,
			"status":   created.Status,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "offering created",
		slog.Int64("offering_id", created.ID),
		slog.String("organizer_id", actorID.String()),
		slog.Int("capacity", created.Capacity),
	)
	return created, nil
}

// Get returns an offering with its derived registered count.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Offering, error) {
	if _, _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	o, err := s.offerings.GetByID(ctx, id)
	if err != nil {
		return nil, offeringError(err)
	}
	return o, nil
}

// List returns one page of offerings and the total match count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Offering, int, error) {
	if _, _, err := actorFromCtx(ctx); err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	f := input.filter()
	items, total, err := s.offerings.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list offerings: %w", err)
	}
	return items, total, nil
}

// Update applies a partial update. Only the owning organizer or an admin may
// update; the resulting window and capacity are validated as a whole.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Offering, error) {
	actorID, role, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Offering
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.offerings.GetByIDForUpdate(ctx, id)
		if err != nil {
			return offeringError(err)
		}
		if !current.ManagedBy(actorID, role) {
			return domain.ErrForbidden
		}

		next := current.Apply(input.params())
		if err := domain.ValidateWindow(next.StartsAt, next.EndsAt); err != nil {
			return err
		}

		changes := buildChanges(current, &next)
		if len(changes) == 0 {
			updated = current
			return nil
		}

		next.UpdatedAt = s.now()
		updated, err = s.offerings.Update(ctx, next)
		if err != nil {
			return fmt.Errorf("update offering: %w", err)
		}
		return s.logAudit(ctx, actorID, id, domain.AuditActionUpdate, changes)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "offering updated",
		slog.Int64("offering_id", id),
		slog.String("actor_id", actorID.String()),
	)
	return updated, nil
}

func (s *Service) logAudit(ctx context.Context, actorID uuid.UUID, offeringID int64, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     actorID,
		EntityType: domain.EntityTypeOffering,
		EntityID:   fmt.Sprintf("%d", offeringID),
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now(),
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func actorFromCtx(ctx context.Context) (uuid.UUID, domain.UserRole, error) {
	userID, role, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, domain.UserRole(role), nil
}

func offeringError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrOfferingNotFound
	}
	return fmt.Errorf("get offering: %w", err)
}

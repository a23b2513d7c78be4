// Package participation implements the participation lifecycle: capacity
// guarded registration, organizer decisions, attendance capture and the
// per-offering statistics view.
package participation

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
}

type participationRepo interface {
	GetByPair(ctx context.Context, offeringID int64, userID uuid.UUID) (*domain.Participation, error)
	GetByPairForUpdate(ctx context.Context, offeringID int64, userID uuid.UUID) (*domain.Participation, error)
	CountOccupying(ctx context.Context, offeringID int64) (int, error)
	Create(ctx context.Context, p domain.Participation) (*domain.Participation, error)
	Update(ctx context.Context, p domain.Participation) (*domain.Participation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DecidePending(ctx context.Context, offeringID int64, userIDs []uuid.UUID, d domain.Decision, actorID uuid.UUID, comment *string, now time.Time) ([]domain.Participation, error)

	ListByOffering(ctx context.Context, offeringID int64, status *domain.RegistrationStatus, limit, offset int) ([]domain.ParticipantRow, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ParticipationWithOffering, int, error)

	// Statistics
	Summary(ctx context.Context, offeringID int64) (domain.StatsSummary, error)
	StatusBreakdown(ctx context.Context, offeringID int64) (map[domain.RegistrationStatus]int, error)
	GenderBreakdown(ctx context.Context, offeringID int64) (map[string]int, error)
	AgeBandBreakdown(ctx context.Context, offeringID int64, asOf time.Time) (map[string]int, error)
}

type hourAggregator interface {
	AddVolunteerHours(ctx context.Context, id uuid.UUID, delta float64) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Enqueue(n domain.Notification) bool
}

// Pagination bounds for list operations.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Service provides participation lifecycle operations.
type Service struct {
	offerings      offeringRepo
	participations participationRepo
	hours          hourAggregator
	audit          auditLogger
	tx             txManager
	notifier       notifier
	log            *slog.Logger
	now            func() time.Time
}

// NewService creates a new participation service.
func NewService(
	log *slog.Logger,
	offerings offeringRepo,
	participations participationRepo,
	hours hourAggregator,
	audit auditLogger,
	tx txManager,
	notifier notifier,
) *Service {
	return &Service{
		offerings:      offerings,
		participations: participations,
		hours:          hours,
		audit:          audit,
		tx:             tx,
		notifier:       notifier,
		log:            log.With("service", "participation"),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// actorFromCtx returns the authenticated caller.
func actorFromCtx(ctx context.Context) (uuid.UUID, domain.UserRole, error) {
	userID, role, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, domain.UserRole(role), nil
}

// offeringError converts a storage miss into the offering rule error.
func offeringError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrOfferingNotFound
	}
	return fmt.Errorf("get offering: %w", err)
}

// recordError converts a storage miss into the given rule error.
func recordError(err error, missing error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return missing
	}
	return fmt.Errorf("get participation: %w", err)
}

// loadManaged fetches an offering and checks that the caller may manage it.
func (s *Service) loadManaged(ctx context.Context, offeringID int64, actorID uuid.UUID, role domain.UserRole) (*domain.Offering, error) {
	offering, err := s.offerings.GetByID(ctx, offeringID)
	if err != nil {
		return nil, offeringError(err)
	}
	if !offering.ManagedBy(actorID, role) {
		return nil, domain.ErrForbidden
	}
	return offering, nil
}

// notify hands a notification to the dispatcher. It never blocks and never fails the caller.
func (s *Service) notify(ctx context.Context, n domain.Notification) {
	if s.notifier == nil {
		return
	}
	if !s.notifier.Enqueue(n) {
		s.log.WarnContext(ctx, "notification dropped",
			slog.String("user_id", n.UserID.String()),
			slog.String("title", n.Title),
		)
	}
}

func (s *Service) logAudit(ctx context.Context, actorID uuid.UUID, p *domain.Participation, action domain.AuditAction, changes map[string]any) error {
	if err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     actorID,
		EntityType: domain.EntityTypeParticipation,
		EntityID:   p.ID.String(),
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now(),
	}); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

package participation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// Register admits the caller to an offering as a pending participant.
//
// The offering row is locked for the whole transaction, so admissions for one
// offering run one at a time and the seat count cannot be raced.
func (s *Service) Register(ctx context.Context, offeringID int64) (*domain.Participation, error) {
	userID, role, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if role != domain.UserRoleVolunteer {
		return nil, domain.ErrForbidden
	}
	if offeringID <= 0 {
		return nil, domain.NewValidationError("offering_id", "required")
	}

	var created *domain.Participation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		offering, getErr := s.offerings.GetByIDForUpdate(txCtx, offeringID)
		if getErr != nil {
			return offeringError(getErr)
		}
		if !offering.AcceptsRegistrations() {
			return domain.ErrOfferingNotOpen
		}

		_, getErr = s.participations.GetByPair(txCtx, offeringID, userID)
		switch {
		case getErr == nil:
			return domain.ErrAlreadyRegistered
		case !errors.Is(getErr, domain.ErrNotFound):
			return fmt.Errorf("get participation: %w", getErr)
		}

		occupied, countErr := s.participations.CountOccupying(txCtx, offeringID)
		if countErr != nil {
			return fmt.Errorf("count occupying: %w", countErr)
		}
		if admitErr := offering.Admit(occupied); admitErr != nil {
			return admitErr
		}

		var createErr error
		created, createErr = s.participations.Create(txCtx, domain.NewParticipation(offeringID, userID, s.now()))
		if createErr != nil {
			if errors.Is(createErr, domain.ErrAlreadyExists) {
				return domain.ErrAlreadyRegistered
			}
			return fmt.Errorf("create participation: %w", createErr)
		}

		return s.logAudit(txCtx, userID, created, domain.AuditActionCreate, map[string]any{
			"offering_id": offeringID,
			"status":      map[string]any{"new": created.Status},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "registration admitted",
		slog.String("user_id", userID.String()),
		slog.Int64("offering_id", offeringID),
	)

	return created, nil
}

// CancelRegistration withdraws the caller's registration. Only records that
// have not signed in may be withdrawn; the row is deleted and its last state
// is kept in the audit log.
func (s *Service) CancelRegistration(ctx context.Context, offeringID int64) error {
	userID, _, err := actorFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, getErr := s.participations.GetByPairForUpdate(txCtx, offeringID, userID)
		if getErr != nil {
			return recordError(getErr, domain.ErrNotRegistered)
		}
		if cancelErr := p.CheckCancelable(); cancelErr != nil {
			return cancelErr
		}

		if delErr := s.participations.Delete(txCtx, p.ID); delErr != nil {
			return fmt.Errorf("delete participation: %w", delErr)
		}

		return s.logAudit(txCtx, userID, p, domain.AuditActionDelete, snapshot(p))
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "registration cancelled",
		slog.String("user_id", userID.String()),
		slog.Int64("offering_id", offeringID),
	)

	return nil
}

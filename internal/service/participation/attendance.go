package participation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// Scan decodes a scanned token and routes it to SignIn or SignOut for the caller.
func (s *Service) Scan(ctx context.Context, rawToken string) (*domain.ScanResult, error) {
	token, err := domain.DecodeScanToken(rawToken)
	if err != nil {
		return nil, err
	}

	switch token.Action {
	case domain.ScanActionSignIn:
		return s.SignIn(ctx, token.OfferingID)
	case domain.ScanActionSignOut:
		return s.SignOut(ctx, token.OfferingID)
	}
	return nil, domain.ErrMalformedToken
}

// IssueScanToken returns a fresh token for the offering's attendance QR code.
// Only the offering's organizer or an admin may issue tokens.
func (s *Service) IssueScanToken(ctx context.Context, offeringID int64, action domain.ScanAction) (string, error) {
	actorID, role, err := actorFromCtx(ctx)
	if err != nil {
		return "", err
	}
	if !action.IsValid() {
		return "", domain.NewValidationError("action", "must be signIn or signOut")
	}
	if _, err := s.loadManaged(ctx, offeringID, actorID, role); err != nil {
		return "", err
	}
	return domain.EncodeScanToken(offeringID, action, s.now()), nil
}

// SignIn records the caller's arrival. A pending registration becomes approved.
func (s *Service) SignIn(ctx context.Context, offeringID int64) (*domain.ScanResult, error) {
	userID, _, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var updated *domain.Participation
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, getErr := s.offerings.GetByID(txCtx, offeringID); getErr != nil {
			return offeringError(getErr)
		}

		p, getErr := s.participations.GetByPairForUpdate(txCtx, offeringID, userID)
		if getErr != nil {
			return recordError(getErr, domain.ErrNotRegistered)
		}

		old := *p
		if signErr := p.SignIn(s.now()); signErr != nil {
			return signErr
		}

		var updateErr error
		updated, updateErr = s.participations.Update(txCtx, *p)
		if updateErr != nil {
			return fmt.Errorf("update participation: %w", updateErr)
		}

		return s.logAudit(txCtx, userID, updated, domain.AuditActionUpdate, buildChanges(&old, updated))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "participant signed in",
		slog.String("user_id", userID.String()),
		slog.Int64("offering_id", offeringID),
	)

	return &domain.ScanResult{
		Action: domain.ScanActionSignIn,
		State:  updated.AttendanceState(),
		Status: updated.Status,
	}, nil
}

// SignOut records the caller's departure, stores the rounded duration and
// adds it to the caller's hour total in the same transaction. If the total
// cannot be updated, nothing is written.
func (s *Service) SignOut(ctx context.Context, offeringID int64) (*domain.ScanResult, error) {
	userID, _, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var (
		offering *domain.Offering
		updated  *domain.Participation
		hours    float64
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		offering, getErr = s.offerings.GetByID(txCtx, offeringID)
		if getErr != nil {
			return offeringError(getErr)
		}

		p, getErr := s.participations.GetByPairForUpdate(txCtx, offeringID, userID)
		if getErr != nil {
			return recordError(getErr, domain.ErrNotRegistered)
		}

		old := *p
		var signErr error
		hours, signErr = p.SignOut(s.now(), offering.Kind)
		if signErr != nil {
			return signErr
		}

		var updateErr error
		updated, updateErr = s.participations.Update(txCtx, *p)
		if updateErr != nil {
			return fmt.Errorf("update participation: %w", updateErr)
		}

		if addErr := s.hours.AddVolunteerHours(txCtx, userID, hours); addErr != nil {
			return fmt.Errorf("add volunteer hours: %w", addErr)
		}

		return s.logAudit(txCtx, userID, updated, domain.AuditActionUpdate, buildChanges(&old, updated))
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, attendanceNotification(updated, offering.Title, hours))

	s.log.InfoContext(ctx, "participant signed out",
		slog.String("user_id", userID.String()),
		slog.Int64("offering_id", offeringID),
		slog.Float64("duration_hours", hours),
	)

	return &domain.ScanResult{
		Action:        domain.ScanActionSignOut,
		State:         updated.AttendanceState(),
		Status:        updated.Status,
		DurationHours: &hours,
	}, nil
}

// Confirm records the caller's acknowledgement of the recorded duration.
func (s *Service) Confirm(ctx context.Context, offeringID int64) (*domain.Participation, error) {
	userID, _, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	return s.mutateOwn(ctx, userID, offeringID, "attendance confirmed", func(p *domain.Participation) error {
		return p.Confirm(s.now())
	})
}

// Evaluate stores the caller's rating and comment for an attended offering.
func (s *Service) Evaluate(ctx context.Context, input EvaluateInput) (*domain.Participation, error) {
	userID, _, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	comment := trimOrNil(input.Comment)

	return s.mutateOwn(ctx, userID, input.OfferingID, "participation evaluated", func(p *domain.Participation) error {
		return p.Evaluate(input.Rating, comment, s.now())
	})
}

// mutateOwn locks the caller's record, applies fn and persists the result.
func (s *Service) mutateOwn(ctx context.Context, userID uuid.UUID, offeringID int64, event string, fn func(p *domain.Participation) error) (*domain.Participation, error) {
	var updated *domain.Participation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, getErr := s.participations.GetByPairForUpdate(txCtx, offeringID, userID)
		if getErr != nil {
			return recordError(getErr, domain.ErrNotRegistered)
		}

		old := *p
		if fnErr := fn(p); fnErr != nil {
			return fnErr
		}

		var updateErr error
		updated, updateErr = s.participations.Update(txCtx, *p)
		if updateErr != nil {
			return fmt.Errorf("update participation: %w", updateErr)
		}

		return s.logAudit(txCtx, userID, updated, domain.AuditActionUpdate, buildChanges(&old, updated))
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, event,
		slog.String("user_id", userID.String()),
		slog.Int64("offering_id", offeringID),
	)

	return updated, nil
}

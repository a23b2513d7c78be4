package participation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// Decide applies an organizer decision to one registration. The participant
// is notified after the transaction commits.
func (s *Service) Decide(ctx context.Context, input DecideInput) (*domain.Participation, error) {
	actorID, role, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	comment := trimOrNil(input.Comment)

	var (
		offering *domain.Offering
		updated  *domain.Participation
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var loadErr error
		offering, loadErr = s.loadManaged(txCtx, input.OfferingID, actorID, role)
		if loadErr != nil {
			return loadErr
		}

		p, getErr := s.participations.GetByPairForUpdate(txCtx, input.OfferingID, input.UserID)
		if getErr != nil {
			return recordError(getErr, domain.ErrParticipationNotFound)
		}

		old := *p
		if decideErr := p.Decide(input.Decision, actorID, comment, s.now()); decideErr != nil {
			return decideErr
		}

		var updateErr error
		updated, updateErr = s.participations.Update(txCtx, *p)
		if updateErr != nil {
			return fmt.Errorf("update participation: %w", updateErr)
		}

		return s.logAudit(txCtx, actorID, updated, domain.AuditActionUpdate, buildChanges(&old, updated))
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, decisionNotification(updated, offering.Title))

	s.log.InfoContext(ctx, "registration decided",
		slog.String("actor_id", actorID.String()),
		slog.String("user_id", input.UserID.String()),
		slog.Int64("offering_id", input.OfferingID),
		slog.String("decision", input.Decision.String()),
	)

	return updated, nil
}

// BatchResult holds the outcome of a batch decision.
type BatchResult struct {
	Applied int
	Skipped int
}

// DecideBatch applies one decision to every listed user that holds a pending
// record for the offering. Users without a pending record are skipped.
func (s *Service) DecideBatch(ctx context.Context, input DecideBatchInput) (BatchResult, error) {
	actorID, role, err := actorFromCtx(ctx)
	if err != nil {
		return BatchResult{}, err
	}
	if err := input.Validate(); err != nil {
		return BatchResult{}, err
	}
	comment := trimOrNil(input.Comment)
	userIDs := dedupe(input.UserIDs)

	var (
		offering *domain.Offering
		applied  []domain.Participation
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var loadErr error
		offering, loadErr = s.loadManaged(txCtx, input.OfferingID, actorID, role)
		if loadErr != nil {
			return loadErr
		}

		var decideErr error
		applied, decideErr = s.participations.DecidePending(txCtx, input.OfferingID, userIDs, input.Decision, actorID, comment, s.now())
		if decideErr != nil {
			return fmt.Errorf("decide pending: %w", decideErr)
		}

		for i := range applied {
			p := &applied[i]
			if auditErr := s.logAudit(txCtx, actorID, p, domain.AuditActionUpdate, map[string]any{
				"status": map[string]any{"old": domain.RegistrationStatusPending, "new": p.Status},
				"batch":  true,
			}); auditErr != nil {
				return auditErr
			}
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, err
	}

	for i := range applied {
		s.notify(ctx, decisionNotification(&applied[i], offering.Title))
	}

	result := BatchResult{Applied: len(applied), Skipped: len(userIDs) - len(applied)}

	s.log.InfoContext(ctx, "registrations decided in batch",
		slog.String("actor_id", actorID.String()),
		slog.Int64("offering_id", input.OfferingID),
		slog.String("decision", input.Decision.String()),
		slog.Int("applied", result.Applied),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

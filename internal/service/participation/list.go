package participation

import (
	"context"
	"fmt"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// ListParticipants returns the offering's participants projected for the
// caller's role, with the total count ignoring pagination.
func (s *Service) ListParticipants(ctx context.Context, input ListParticipantsInput) ([]domain.ParticipantView, int, error) {
	actorID, role, err := actorFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	if _, err := s.loadManaged(ctx, input.OfferingID, actorID, role); err != nil {
		return nil, 0, err
	}

	limit, offset := normalizePage(input.Limit, input.Offset)
	rows, total, err := s.participations.ListByOffering(ctx, input.OfferingID, input.Status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list participants: %w", err)
	}

	views := make([]domain.ParticipantView, len(rows))
	for i, row := range rows {
		views[i] = domain.ProjectParticipant(row, role)
	}
	return views, total, nil
}

// ListMine returns the caller's own participation history, newest first.
func (s *Service) ListMine(ctx context.Context, limit, offset int) ([]domain.ParticipationWithOffering, int, error) {
	userID, _, err := actorFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	limit, offset = normalizePage(limit, offset)
	items, total, err := s.participations.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list my participations: %w", err)
	}
	return items, total, nil
}

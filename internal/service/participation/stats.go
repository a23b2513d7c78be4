package participation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// GetStats returns the statistics view of an offering. Only the offering's
// organizer or an admin may read it.
func (s *Service) GetStats(ctx context.Context, offeringID int64) (*domain.OfferingStats, error) {
	actorID, role, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	offering, err := s.loadManaged(ctx, offeringID, actorID, role)
	if err != nil {
		return nil, err
	}

	var (
		summary  domain.StatsSummary
		byStatus map[domain.RegistrationStatus]int
		byGender map[string]int
		byAge    map[string]int
	)
	asOf := s.now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var qErr error
		summary, qErr = s.participations.Summary(gctx, offeringID)
		return qErr
	})
	g.Go(func() error {
		var qErr error
		byStatus, qErr = s.participations.StatusBreakdown(gctx, offeringID)
		return qErr
	})
	g.Go(func() error {
		var qErr error
		byGender, qErr = s.participations.GenderBreakdown(gctx, offeringID)
		return qErr
	})
	g.Go(func() error {
		var qErr error
		byAge, qErr = s.participations.AgeBandBreakdown(gctx, offeringID, asOf)
		return qErr
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("offering stats: %w", err)
	}

	stats := domain.NewOfferingStats(offering, summary, byStatus, byGender, byAge)
	return &stats, nil
}

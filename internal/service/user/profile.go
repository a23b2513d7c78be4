package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile, including the
// cumulative volunteer hour total.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile updates the authenticated user's name and demographics.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		old, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		updated, err = s.users.UpdateProfile(ctx, userID, input.params())
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		changes := profileChanges(old, updated)
		if len(changes) == 0 {
			return nil
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeUser,
			EntityID:   userID.String(),
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
			CreatedAt:  s.now(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

func profileChanges(old, updated *domain.User) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if !sameGender(old.Gender, updated.Gender) {
		changes["gender"] = map[string]any{"old": old.Gender, "new": updated.Gender}
	}
	if !sameDate(old, updated) {
		changes["birth_date"] = map[string]any{"old": old.BirthDate, "new": updated.BirthDate}
	}
	return changes
}

func sameGender(a, b *domain.Gender) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameDate(a, b *domain.User) bool {
	if a.BirthDate == nil || b.BirthDate == nil {
		return a.BirthDate == b.BirthDate
	}
	return a.BirthDate.Equal(*b.BirthDate)
}

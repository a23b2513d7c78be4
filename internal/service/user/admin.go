package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/pkg/ctxutil"
)

const (
	defaultAdminPageSize = 50
	maxAdminPageSize     = 200
)

// requireAdmin returns the calling admin's ID.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	id, role, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if domain.UserRole(role) != domain.UserRoleAdmin {
		return uuid.Nil, domain.ErrForbidden
	}
	return id, nil
}

func clampPage(limit int) int {
	switch {
	case limit == 0:
		return defaultAdminPageSize
	case limit > maxAdminPageSize:
		return maxAdminPageSize
	}
	return limit
}

// SetUserRole grants targetUserID a new role. The change is audited against
// the calling admin and applies to the next request the target makes, since
// every request re-reads the role from storage. Admins cannot demote
// themselves, so at least one admin always remains.
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of volunteer, organizer, admin")
	}
	if adminID == targetUserID && role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role", "admins cannot demote themselves")
	}

	var (
		updated  *domain.User
		previous domain.UserRole
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.users.GetByID(ctx, targetUserID)
		if err != nil {
			return err
		}
		previous = current.Role
		if current.Role == role {
			updated = current
			return nil
		}

		if updated, err = s.users.UpdateRole(ctx, targetUserID, role); err != nil {
			return err
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     adminID,
			EntityType: domain.EntityTypeUser,
			EntityID:   targetUserID.String(),
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": map[string]any{"old": current.Role, "new": role}},
			CreatedAt:  s.now(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	if previous != role {
		s.log.InfoContext(ctx, "user role changed",
			slog.String("target_user_id", targetUserID.String()),
			slog.String("from", previous.String()),
			slog.String("to", role.String()),
		)
	}
	return updated, nil
}

// ListUsers returns one page of users, optionally restricted to a role,
// together with the number of users matching the role filter.
func (s *Service) ListUsers(ctx context.Context, q ListUsersQuery) ([]domain.User, int, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}

	users, err := s.users.ListUsers(ctx, domain.UserFilter{
		Role:   q.Role,
		Limit:  clampPage(q.Limit),
		Offset: q.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.CountUsers(ctx, q.Role)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: count: %w", err)
	}
	return users, total, nil
}

// AuditHistory returns audit records matching q, newest first.
func (s *Service) AuditHistory(ctx context.Context, q AuditQuery) ([]domain.AuditRecord, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	records, err := s.audit.List(ctx, domain.AuditFilter{
		EntityType: q.EntityType,
		EntityID:   q.EntityID,
		UserID:     q.ActorID,
		Since:      q.Since,
		Until:      q.Until,
		Limit:      clampPage(q.Limit),
		Offset:     q.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("user.AuditHistory: %w", err)
	}
	return records, nil
}

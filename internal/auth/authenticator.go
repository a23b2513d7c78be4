package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

type userLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Authenticator validates bearer tokens and resolves the caller against the
// local user mirror. The stored role is authoritative: a role changed by an
// admin applies to the next request without reissuing the token.
type Authenticator struct {
	tokens *JWTManager
	users  userLookup
}

// NewAuthenticator creates a new authenticator.
func NewAuthenticator(tokens *JWTManager, users userLookup) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Resolve returns the caller's user ID and current role. Bad tokens and
// unknown users wrap domain.ErrUnauthorized; lookup failures do not.
func (a *Authenticator) Resolve(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error) {
	userID, _, err := a.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, "", fmt.Errorf("%w: unknown user %s", domain.ErrUnauthorized, userID)
		}
		return uuid.Nil, "", fmt.Errorf("resolve user: %w", err)
	}

	return user.ID, user.Role, nil
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/pkg/ctxutil"
)

// RequireRole returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden if the caller holds none of roles.
func RequireRole(ctx context.Context, roles ...domain.UserRole) error {
	_, role, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !slices.Contains(roles, domain.UserRole(role)) {
		return domain.ErrForbidden
	}
	return nil
}

// Roles rejects requests whose caller holds none of roles, before they reach
// the handler. Services still perform their own ownership checks.
func Roles(roles ...domain.UserRole) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := RequireRole(r.Context(), roles...); err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
					return
				}
				writeError(w, http.StatusForbidden, "FORBIDDEN", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

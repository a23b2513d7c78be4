package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/pkg/ctxutil"
)

// identityResolver turns a bearer token into the caller's identity.
// It returns an error wrapping domain.ErrUnauthorized for tokens that must be rejected.
type identityResolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error)
}

// Auth resolves a bearer token into the caller's user ID and role.
// Requests without a bearer token pass through anonymously; services reject
// them where authentication is required. A rejected token is answered with
// 401, a failing resolver with 500.
func Auth(resolver identityResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, role, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
					return
				}
				logger.ErrorContext(r.Context(), "resolve caller identity",
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("error", err.Error()),
				)
				writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithCaller(r.Context(), userID, role.String())))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Package ctxutil carries per-request values through context.Context: the
// authenticated caller and the request ID.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	userRoleKey  ctxKey = "user_role"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the caller's user ID.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns the caller's user ID. The nil UUID counts as absent.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserRole stores the caller's role as resolved from storage.
func WithUserRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

// UserRoleFromCtx returns the caller's role, or "" when none was stored.
func UserRoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

// WithCaller stores the authenticated caller's identity.
func WithCaller(ctx context.Context, id uuid.UUID, role string) context.Context {
	return WithUserRole(WithUserID(ctx, id), role)
}

// CallerFromCtx returns the caller's ID and role. ok is false for anonymous
// requests; the role may be empty when only an ID was stored.
func CallerFromCtx(ctx context.Context) (id uuid.UUID, role string, ok bool) {
	id, ok = UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", false
	}
	return id, UserRoleFromCtx(ctx), true
}

// WithRequestID stores the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one entry of the append-only change log. UserID is the
// actor; Changes holds {"field": {"old": ..., "new": ...}} pairs.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   string
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// AuditFilter narrows audit listings. Nil fields are ignored. Since is
// inclusive, Until exclusive.
type AuditFilter struct {
	EntityType *EntityType
	EntityID   *string
	UserID     *uuid.UUID
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Offset     int
}

package offering

import (
	"time"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// buildChanges returns only the fields that differ between old and updated.
func buildChanges(old, updated *domain.Offering) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, o, n any) {
		changes[field] = map[string]any{"old": o, "new": n}
	}

	if old.Title != updated.Title {
		diff("title", old.Title, updated.Title)
	}
	if !sameString(old.Description, updated.Description) {
		diff("description", old.Description, updated.Description)
	}
	if old.Capacity != updated.Capacity {
		diff("capacity", old.Capacity, updated.Capacity)
	}
	if !old.StartsAt.Equal(updated.StartsAt) {
		diff("starts_at", old.StartsAt.Format(time.RFC3339), updated.StartsAt.Format(time.RFC3339))
	}
	if !old.EndsAt.Equal(updated.EndsAt) {
		diff("ends_at", old.EndsAt.Format(time.RFC3339), updated.EndsAt.Format(time.RFC3339))
	}
	if old.Status != updated.Status {
		diff("status", old.Status, updated.Status)
	}
	return changes
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

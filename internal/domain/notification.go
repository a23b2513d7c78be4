package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message delivered to a user's inbox.
type Notification struct {
	ID                string
	UserID            uuid.UUID
	Title             string
	Content           string
	Category          NotificationCategory
	RelatedOfferingID *int64
	ReadAt            *time.Time
	CreatedAt         time.Time
}

// IsRead reports whether the user has opened the notification.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

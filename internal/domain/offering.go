package domain

import (
	"time"

	"github.com/google/uuid"
)

// Offering is an activity or training session with a fixed number of seats.
type Offering struct {
	ID          int64
	Kind        OfferingKind
	Title       string
	Description *string
	OrganizerID uuid.UUID
	Capacity    int
	StartsAt    time.Time
	EndsAt      time.Time
	Status      OfferingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	RegisteredCount int // computed from the ledger, not stored
}

// OfferingUpdateParams carries a partial update of an offering.
// Nil fields are left unchanged.
type OfferingUpdateParams struct {
	Title       *string
	Description *string
	Capacity    *int
	StartsAt    *time.Time
	EndsAt      *time.Time
	Status      *OfferingStatus
}

// OfferingFilter narrows offering listings.
type OfferingFilter struct {
	Status      *OfferingStatus
	Kind        *OfferingKind
	OrganizerID *uuid.UUID
	Limit       int
	Offset      int
}

// AcceptsRegistrations reports whether new registrations may be admitted.
func (o *Offering) AcceptsRegistrations() bool {
	return o.Status == OfferingStatusRecruiting || o.Status == OfferingStatusOngoing
}

// Admit decides whether one more registration fits, given the number of
// records currently occupying a seat.
func (o *Offering) Admit(occupied int) error {
	if !o.AcceptsRegistrations() {
		return ErrOfferingNotOpen
	}
	if occupied >= o.Capacity {
		return ErrCapacityExceeded
	}
	return nil
}

// RemainingSeats returns the number of free seats, never negative.
func (o *Offering) RemainingSeats(occupied int) int {
	if occupied >= o.Capacity {
		return 0
	}
	return o.Capacity - occupied
}

// ManagedBy reports whether the actor may manage the offering: its organizer or any admin.
func (o *Offering) ManagedBy(actorID uuid.UUID, role UserRole) bool {
	return role == UserRoleAdmin || (role == UserRoleOrganizer && o.OrganizerID == actorID)
}

// ValidateWindow checks that the offering ends after it starts.
func ValidateWindow(startsAt, endsAt time.Time) error {
	if !endsAt.After(startsAt) {
		return ErrInvalidTimeWindow
	}
	return nil
}

// Apply returns a copy of o with the non-nil params applied.
func (o Offering) Apply(p OfferingUpdateParams) Offering {
	if p.Title != nil {
		o.Title = *p.Title
	}
	if p.Description != nil {
		if *p.Description == "" {
			o.Description = nil
		} else {
			desc := *p.Description
			o.Description = &desc
		}
	}
	if p.Capacity != nil {
		o.Capacity = *p.Capacity
	}
	if p.StartsAt != nil {
		o.StartsAt = *p.StartsAt
	}
	if p.EndsAt != nil {
		o.EndsAt = *p.EndsAt
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	return o
}

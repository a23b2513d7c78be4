package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participation is one user's ledger row for one offering: registration
// status, approval metadata, attendance timestamps and evaluation.
// Attendance fields only move forward through SignIn, SignOut and Confirm.
type Participation struct {
	ID              uuid.UUID
	OfferingID      int64
	UserID          uuid.UUID
	Status          RegistrationStatus
	SignInAt        *time.Time
	SignOutAt       *time.Time
	DurationHours   *float64
	Confirmed       bool
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	ApprovalComment *string
	Rating          *int
	Comment         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewParticipation returns a pending record for the pair.
func NewParticipation(offeringID int64, userID uuid.UUID, now time.Time) Participation {
	return Participation{
		ID:         uuid.New(),
		OfferingID: offeringID,
		UserID:     userID,
		Status:     RegistrationStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AttendanceState derives the attendance sub-state from the timestamps.
func (p *Participation) AttendanceState() AttendanceState {
	switch {
	case p.SignOutAt != nil:
		return AttendanceSignedOut
	case p.SignInAt != nil:
		return AttendanceSignedIn
	}
	return AttendanceNotSignedIn
}

// CheckCancelable returns an error if the registration can no longer be withdrawn.
func (p *Participation) CheckCancelable() error {
	if p.SignInAt != nil {
		return ErrAlreadyStarted
	}
	if p.Status == RegistrationStatusRejected {
		return ErrRegistrationRejected
	}
	return nil
}

// Decide applies an organizer decision. Switching to the other outcome is
// allowed until attendance starts; repeating the current outcome is not.
func (p *Participation) Decide(d Decision, actorID uuid.UUID, comment *string, now time.Time) error {
	if p.Status == RegistrationStatusCompleted || (p.SignInAt != nil && d == DecisionRejected) {
		return ErrAlreadyStarted
	}
	if p.Status == d.Status() {
		return ErrAlreadyDecided
	}

	p.Status = d.Status()
	p.ApprovedBy = &actorID
	p.ApprovedAt = &now
	p.ApprovalComment = comment
	p.UpdatedAt = now
	return nil
}

// SignIn records arrival. A pending registration is promoted to approved:
// arriving in person counts as implicit approval.
func (p *Participation) SignIn(now time.Time) error {
	if p.Status == RegistrationStatusRejected {
		return ErrRegistrationRejected
	}
	if p.SignInAt != nil {
		return ErrAlreadySignedIn
	}

	p.SignInAt = &now
	if p.Status == RegistrationStatusPending {
		p.Status = RegistrationStatusApproved
	}
	p.UpdatedAt = now
	return nil
}

// SignOut records departure and returns the rounded service duration in hours.
// Trainings are marked completed.
func (p *Participation) SignOut(now time.Time, kind OfferingKind) (float64, error) {
	if p.SignInAt == nil {
		return 0, ErrNotSignedIn
	}
	if p.SignOutAt != nil {
		return 0, ErrAlreadySignedOut
	}
	if now.Before(*p.SignInAt) {
		now = *p.SignInAt
	}

	hours := DurationHours(*p.SignInAt, now)
	p.SignOutAt = &now
	p.DurationHours = &hours
	if kind == OfferingKindTraining {
		p.Status = RegistrationStatusCompleted
	}
	p.UpdatedAt = now
	return hours, nil
}

// Confirm is the participant's one-way acknowledgement of the recorded duration.
func (p *Participation) Confirm(now time.Time) error {
	if p.SignOutAt == nil {
		return ErrNotSignedOut
	}
	if p.Confirmed {
		return ErrAlreadyConfirmed
	}

	p.Confirmed = true
	p.UpdatedAt = now
	return nil
}

// Evaluate stores the participant's rating and comment after sign-out.
// Later evaluations overwrite earlier ones.
func (p *Participation) Evaluate(rating int, comment *string, now time.Time) error {
	if p.SignOutAt == nil {
		return ErrNotSignedOut
	}
	if rating < 1 || rating > 5 {
		return NewValidationError("rating", "must be between 1 and 5")
	}

	p.Rating = &rating
	p.Comment = comment
	p.UpdatedAt = now
	return nil
}

// DurationHours returns the elapsed time between in and out in hours,
// rounded half-up to one decimal.
func DurationHours(in, out time.Time) float64 {
	d := out.Sub(in)
	if d <= 0 {
		return 0
	}
	tenths := (d*10 + time.Hour/2) / time.Hour
	return float64(tenths) / 10
}

// ScanResult is the outcome of processing a scan token.
type ScanResult struct {
	Action        ScanAction
	State         AttendanceState
	Status        RegistrationStatus
	DurationHours *float64
}

// ParticipationWithOffering is a ledger record together with the offering
// summary shown in a participant's own history.
type ParticipationWithOffering struct {
	Participation
	OfferingTitle    string
	OfferingKind     OfferingKind
	OfferingStatus   OfferingStatus
	OfferingStartsAt time.Time
	OfferingEndsAt   time.Time
}

package user

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

var earliestBirthDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	Name      *string
	Gender    *domain.Gender
	BirthDate *time.Time
}

// Validate validates the update profile input against the current time.
func (i UpdateProfileInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Gender != nil && !i.Gender.IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be one of female, male, other"})
	}

	if i.BirthDate != nil {
		if i.BirthDate.After(now) {
			errs = append(errs, domain.FieldError{Field: "birth_date", Message: "cannot be in the future"})
		} else if i.BirthDate.Before(earliestBirthDate) {
			errs = append(errs, domain.FieldError{Field: "birth_date", Message: "must be after 1900-01-01"})
		}
	}

	if i.Name == nil && i.Gender == nil && i.BirthDate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) params() domain.ProfileUpdateParams {
	p := domain.ProfileUpdateParams{Gender: i.Gender}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.BirthDate != nil {
		d := time.Date(i.BirthDate.Year(), i.BirthDate.Month(), i.BirthDate.Day(), 0, 0, 0, 0, time.UTC)
		p.BirthDate = &d
	}
	return p
}

// AuditQuery selects audit history. ActorID narrows to changes made by one
// user; Since and Until bound created_at as [Since, Until).
type AuditQuery struct {
	EntityType *domain.EntityType
	EntityID   *string
	ActorID    *uuid.UUID
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Offset     int
}

// Validate validates the audit query.
func (q AuditQuery) Validate() error {
	var errs []domain.FieldError

	if q.EntityType != nil && !q.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "invalid entity type"})
	}
	if q.EntityID != nil && q.EntityType == nil {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "required when entity_id is set"})
	}
	if q.Since != nil && q.Until != nil && !q.Until.After(*q.Since) {
		errs = append(errs, domain.FieldError{Field: "until", Message: "must be after since"})
	}
	if q.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if q.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListUsersQuery selects a page of users for the admin listing.
type ListUsersQuery struct {
	Role   *domain.UserRole
	Limit  int
	Offset int
}

// Validate validates the listing query.
func (q ListUsersQuery) Validate() error {
	var errs []domain.FieldError

	if q.Role != nil && !q.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be one of volunteer, organizer, admin"})
	}
	if q.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if q.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

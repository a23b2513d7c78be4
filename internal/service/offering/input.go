package offering

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

const maxTitleLen = 200

// CreateInput holds parameters for creating an offering.
type CreateInput struct {
	Kind        domain.OfferingKind
	Title       string
	Description *string
	Capacity    int
	StartsAt    time.Time
	EndsAt      time.Time
	// Status defaults to recruiting.
	Status *domain.OfferingStatus
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be activity or training"})
	}
	errs = appendTitleErrors(errs, i.Title)
	if i.Capacity <= 0 {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must be greater than 0"})
	}
	if i.StartsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "starts_at", Message: "required"})
	}
	if i.EndsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "ends_at", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return domain.ValidateWindow(i.StartsAt, i.EndsAt)
}

func (i CreateInput) toOffering(organizerID uuid.UUID, now time.Time) domain.Offering {
	status := domain.OfferingStatusRecruiting
	if i.Status != nil {
		status = *i.Status
	}

	o := domain.Offering{
		Kind:        i.Kind,
		Title:       strings.TrimSpace(i.Title),
		OrganizerID: organizerID,
		Capacity:    i.Capacity,
		StartsAt:    i.StartsAt.UTC(),
		EndsAt:      i.EndsAt.UTC(),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if i.Description != nil && strings.TrimSpace(*i.Description) != "" {
		desc := strings.TrimSpace(*i.Description)
		o.Description = &desc
	}
	return o
}

// UpdateInput holds a partial offering update. Nil fields are left unchanged;
// an empty description clears it.
type UpdateInput struct {
	Title       *string
	Description *string
	Capacity    *int
	StartsAt    *time.Time
	EndsAt      *time.Time
	Status      *domain.OfferingStatus
}

// Validate validates the fields that are set.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	if i.Capacity != nil && *i.Capacity <= 0 {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must be greater than 0"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Title == nil && i.Description == nil && i.Capacity == nil &&
		i.StartsAt == nil && i.EndsAt == nil && i.Status == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) params() domain.OfferingUpdateParams {
	p := domain.OfferingUpdateParams{
		Capacity: i.Capacity,
		Status:   i.Status,
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		p.Title = &title
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		p.Description = &desc
	}
	if i.StartsAt != nil {
		t := i.StartsAt.UTC()
		p.StartsAt = &t
	}
	if i.EndsAt != nil {
		t := i.EndsAt.UTC()
		p.EndsAt = &t
	}
	return p
}

// ListInput holds offering list filters and pagination.
type ListInput struct {
	Status      *domain.OfferingStatus
	Kind        *domain.OfferingKind
	OrganizerID *uuid.UUID
	Limit       int
	Offset      int
}

// Validate validates the list filters.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be activity or training"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.OfferingFilter {
	limit, offset := i.Limit, i.Offset
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return domain.OfferingFilter{
		Status:      i.Status,
		Kind:        i.Kind,
		OrganizerID: i.OrganizerID,
		Limit:       limit,
		Offset:      offset,
	}
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	return errs
}

package participation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

const (
	maxCommentLength = 2000
	maxBatchSize     = 500
)

// DecideInput holds the parameters of a single decision.
type DecideInput struct {
	OfferingID int64
	UserID     uuid.UUID
	Decision   domain.Decision
	Comment    *string
}

// Validate checks all fields and collects all errors.
func (i DecideInput) Validate() error {
	var errs []domain.FieldError

	if i.OfferingID <= 0 {
		errs = append(errs, domain.FieldError{Field: "offering_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	errs = appendDecisionErrors(errs, i.Decision, i.Comment)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DecideBatchInput holds the parameters of a batch decision.
type DecideBatchInput struct {
	OfferingID int64
	UserIDs    []uuid.UUID
	Decision   domain.Decision
	Comment    *string
}

// Validate checks all fields and collects all errors.
func (i DecideBatchInput) Validate() error {
	var errs []domain.FieldError

	if i.OfferingID <= 0 {
		errs = append(errs, domain.FieldError{Field: "offering_id", Message: "required"})
	}
	if len(i.UserIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "user_ids", Message: "at least one user required"})
	}
	if len(i.UserIDs) > maxBatchSize {
		errs = append(errs, domain.FieldError{Field: "user_ids", Message: "max 500 users"})
	}
	for _, id := range i.UserIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "user_ids", Message: "contains empty id"})
			break
		}
	}
	errs = appendDecisionErrors(errs, i.Decision, i.Comment)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendDecisionErrors(errs []domain.FieldError, d domain.Decision, comment *string) []domain.FieldError {
	if !d.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be approved or rejected"})
	}
	if comment != nil && len(*comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}
	return errs
}

// EvaluateInput holds the participant's rating and comment.
type EvaluateInput struct {
	OfferingID int64
	Rating     int
	Comment    *string
}

// Validate checks all fields and collects all errors.
func (i EvaluateInput) Validate() error {
	var errs []domain.FieldError

	if i.OfferingID <= 0 {
		errs = append(errs, domain.FieldError{Field: "offering_id", Message: "required"})
	}
	if i.Rating < 1 || i.Rating > 5 {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if i.Comment != nil && len(*i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListParticipantsInput holds the parameters of a participant listing.
type ListParticipantsInput struct {
	OfferingID int64
	Status     *domain.RegistrationStatus
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListParticipantsInput) Validate() error {
	var errs []domain.FieldError

	if i.OfferingID <= 0 {
		errs = append(errs, domain.FieldError{Field: "offering_id", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// dedupe returns ids without repeats, keeping first occurrences.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

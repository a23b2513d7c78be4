package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")
	ErrMalformed     = errors.New("malformed input")
)

// RuleError is a participation rule violation with a stable machine-readable
// code. It unwraps to its kind (ErrConflict, ErrInvalidState, ...), so callers
// can match either the specific rule or the whole kind with errors.Is.
type RuleError struct {
	Code    string
	Message string
	Kind    error
}

func (e *RuleError) Error() string { return e.Message }

func (e *RuleError) Unwrap() error { return e.Kind }

func newRuleError(kind error, code, message string) *RuleError {
	return &RuleError{Code: code, Message: message, Kind: kind}
}

// Participation rule errors.
var (
	ErrOfferingNotFound      = newRuleError(ErrNotFound, "OFFERING_NOT_FOUND", "offering not found")
	ErrParticipationNotFound = newRuleError(ErrNotFound, "PARTICIPATION_NOT_FOUND", "participation record not found")

	ErrAlreadyRegistered = newRuleError(ErrConflict, "ALREADY_REGISTERED", "user is already registered for this offering")
	ErrCapacityExceeded  = newRuleError(ErrConflict, "CAPACITY_EXCEEDED", "offering has no free seats")
	ErrAlreadySignedIn   = newRuleError(ErrConflict, "ALREADY_SIGNED_IN", "participant has already signed in")
	ErrAlreadySignedOut  = newRuleError(ErrConflict, "ALREADY_SIGNED_OUT", "participant has already signed out")
	ErrAlreadyConfirmed  = newRuleError(ErrConflict, "ALREADY_CONFIRMED", "attendance is already confirmed")
	ErrAlreadyStarted    = newRuleError(ErrConflict, "ALREADY_STARTED", "participation has already started")
	ErrAlreadyDecided    = newRuleError(ErrConflict, "ALREADY_DECIDED", "registration already has this decision")

	ErrNotRegistered        = newRuleError(ErrInvalidState, "NOT_REGISTERED", "user is not registered for this offering")
	ErrNotSignedIn          = newRuleError(ErrInvalidState, "NOT_SIGNED_IN", "participant has not signed in")
	ErrNotSignedOut         = newRuleError(ErrInvalidState, "NOT_SIGNED_OUT", "participant has not signed out")
	ErrOfferingNotOpen      = newRuleError(ErrInvalidState, "OFFERING_NOT_OPEN", "offering does not accept registrations")
	ErrRegistrationRejected = newRuleError(ErrInvalidState, "REGISTRATION_REJECTED", "registration was rejected")

	ErrMalformedToken    = newRuleError(ErrMalformed, "MALFORMED_TOKEN", "scan token is malformed")
	ErrInvalidTimeWindow = newRuleError(ErrMalformed, "INVALID_TIME_WINDOW", "end time must be after start time")
)

// ErrorCode returns the stable code for err: the RuleError code when present,
// otherwise a code derived from the sentinel kind. Unknown errors map to "INTERNAL".
func ErrorCode(err error) string {
	var rule *RuleError
	if errors.As(err, &rule) {
		return rule.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrAlreadyExists):
		return "ALREADY_EXISTS"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrConflict):
		return "CONFLICT"
	case errors.Is(err, ErrInvalidState):
		return "INVALID_STATE"
	case errors.Is(err, ErrMalformed):
		return "MALFORMED"
	}
	return "INTERNAL"
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

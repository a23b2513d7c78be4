package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error  string          `json:"error"`
	Code   string          `json:"code"`
	Fields []fieldErrorDTO `json:"fields,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// statusFor maps a domain error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// handleError writes the error envelope for err. Unexpected errors are
// logged and reported without detail.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
		writeError(w, status, "INTERNAL", "internal server error")
		return
	}

	resp := errorResponse{Error: err.Error(), Code: domain.ErrorCode(err)}

	var rule *domain.RuleError
	if errors.As(err, &rule) {
		resp.Error = rule.Message
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Error = "validation failed"
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
	}

	writeJSON(w, status, resp)
}

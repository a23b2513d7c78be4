package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/participation"
)

type participationService interface {
	Register(ctx context.Context, offeringID int64) (*domain.Participation, error)
	CancelRegistration(ctx context.Context, offeringID int64) error
	ListParticipants(ctx context.Context, input participation.ListParticipantsInput) ([]domain.ParticipantView, int, error)
	Decide(ctx context.Context, input participation.DecideInput) (*domain.Participation, error)
	DecideBatch(ctx context.Context, input participation.DecideBatchInput) (participation.BatchResult, error)
	Scan(ctx context.Context, rawToken string) (*domain.ScanResult, error)
	SignIn(ctx context.Context, offeringID int64) (*domain.ScanResult, error)
	SignOut(ctx context.Context, offeringID int64) (*domain.ScanResult, error)
	Confirm(ctx context.Context, offeringID int64) (*domain.Participation, error)
	Evaluate(ctx context.Context, input participation.EvaluateInput) (*domain.Participation, error)
}

// ParticipationHandler serves registration, approval and attendance endpoints.
type ParticipationHandler struct {
	participation participationService
	log           *slog.Logger
}

// NewParticipationHandler creates a ParticipationHandler.
func NewParticipationHandler(svc participationService, logger *slog.Logger) *ParticipationHandler {
	return &ParticipationHandler{
		participation: svc,
		log:           logger.With("handler", "participation"),
	}
}

type decisionRequest struct {
	Decision string  `json:"decision" validate:"required,oneof=approved rejected"`
	Comment  *string `json:"comment" validate:"omitempty,max=2000"`
}

type batchDecisionRequest struct {
	UserIDs  []uuid.UUID `json:"user_ids" validate:"required,min=1,max=500"`
	Decision string      `json:"decision" validate:"required,oneof=approved rejected"`
	Comment  *string     `json:"comment" validate:"omitempty,max=2000"`
}

type evaluationRequest struct {
	Rating  int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

type scanRequest struct {
	Token string `json:"token" validate:"required"`
}

// Register signs the caller up for the offering.
// POST /offerings/{id}/registrations
func (h *ParticipationHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.participation.Register(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toParticipationResponse(p))
}

// Cancel withdraws the caller's registration.
// DELETE /offerings/{id}/registrations
func (h *ParticipationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.participation.CancelRegistration(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Participants lists the offering's participants.
// GET /offerings/{id}/participants?status=pending&limit=50&offset=0
func (h *ParticipationHandler) Participants(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := participation.ListParticipantsInput{OfferingID: id, Limit: limit, Offset: offset}
	if v := queryString(r, "status"); v != nil {
		status := domain.RegistrationStatus(*v)
		input.Status = &status
	}

	views, total, err := h.participation.ListParticipants(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]participantResponse, len(views))
	for i, v := range views {
		items[i] = toParticipantResponse(v)
	}
	writeJSON(w, http.StatusOK, pageResponse[participantResponse]{Items: items, Total: total})
}

// Decide approves or rejects one registration.
// POST /offerings/{id}/participants/{userID}/decision
func (h *ParticipationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req decisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.participation.Decide(r.Context(), participation.DecideInput{
		OfferingID: id,
		UserID:     userID,
		Decision:   domain.Decision(req.Decision),
		Comment:    req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipationResponse(p))
}

// DecideBatch applies one decision to many pending registrations.
// POST /offerings/{id}/decisions
func (h *ParticipationHandler) DecideBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req batchDecisionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.participation.DecideBatch(r.Context(), participation.DecideBatchInput{
		OfferingID: id,
		UserIDs:    req.UserIDs,
		Decision:   domain.Decision(req.Decision),
		Comment:    req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchDecisionResponse(res))
}

// Scan records attendance from a scanned QR token.
// POST /scan
func (h *ParticipationHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.participation.Scan(r.Context(), req.Token)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScanResponse(res))
}

// SignIn records the caller's arrival.
// POST /offerings/{id}/sign-in
func (h *ParticipationHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	h.attendance(w, r, h.participation.SignIn)
}

// SignOut records the caller's departure.
// POST /offerings/{id}/sign-out
func (h *ParticipationHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.attendance(w, r, h.participation.SignOut)
}

func (h *ParticipationHandler) attendance(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (*domain.ScanResult, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScanResponse(res))
}

// Confirm acknowledges the caller's recorded attendance.
// POST /offerings/{id}/confirm
func (h *ParticipationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.participation.Confirm(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipationResponse(p))
}

// Evaluate stores the caller's rating of the offering.
// POST /offerings/{id}/evaluation
func (h *ParticipationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req evaluationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.participation.Evaluate(r.Context(), participation.EvaluateInput{
		OfferingID: id,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipationResponse(p))
}

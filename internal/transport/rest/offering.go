package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/offering"
)

type offeringService interface {
	Create(ctx context.Context, input offering.CreateInput) (*domain.Offering, error)
	Get(ctx context.Context, id int64) (*domain.Offering, error)
	List(ctx context.Context, input offering.ListInput) ([]domain.Offering, int, error)
	Update(ctx context.Context, id int64, input offering.UpdateInput) (*domain.Offering, error)
}

type offeringInsights interface {
	GetStats(ctx context.Context, offeringID int64) (*domain.OfferingStats, error)
	IssueScanToken(ctx context.Context, offeringID int64, action domain.ScanAction) (string, error)
}

type pngRenderer interface {
	PNG(token string) ([]byte, error)
}

// OfferingHandler serves offering management endpoints.
type OfferingHandler struct {
	offerings offeringService
	insights  offeringInsights
	qr        pngRenderer
	log       *slog.Logger
}

// NewOfferingHandler creates an OfferingHandler.
func NewOfferingHandler(offerings offeringService, insights offeringInsights, qr pngRenderer, logger *slog.Logger) *OfferingHandler {
	return &OfferingHandler{
		offerings: offerings,
		insights:  insights,
		qr:        qr,
		log:       logger.With("handler", "offering"),
	}
}

type createOfferingRequest struct {
	Kind        string    `json:"kind" validate:"required,oneof=activity training"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=10000"`
	Capacity    int       `json:"capacity" validate:"required,gt=0"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required"`
	Status      *string   `json:"status" validate:"omitempty,oneof=draft recruiting ongoing completed cancelled"`
}

type updateOfferingRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=10000"`
	Capacity    *int       `json:"capacity" validate:"omitempty,gt=0"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft recruiting ongoing completed cancelled"`
}

// Create creates an offering owned by the caller.
// POST /offerings
func (h *OfferingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOfferingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := offering.CreateInput{
		Kind:        domain.OfferingKind(req.Kind),
		Title:       req.Title,
		Description: req.Description,
		Capacity:    req.Capacity,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if req.Status != nil {
		status := domain.OfferingStatus(*req.Status)
		input.Status = &status
	}

	o, err := h.offerings.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOfferingResponse(o))
}

// List returns offerings filtered by status, kind and organizer.
// GET /offerings?status=recruiting&kind=training&organizer_id=...&limit=50&offset=0
func (h *OfferingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := offering.ListInput{Limit: limit, Offset: offset}
	if v := queryString(r, "status"); v != nil {
		status := domain.OfferingStatus(*v)
		input.Status = &status
	}
	if v := queryString(r, "kind"); v != nil {
		kind := domain.OfferingKind(*v)
		input.Kind = &kind
	}
	if v := queryString(r, "organizer_id"); v != nil {
		id, err := uuid.Parse(*v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("organizer_id", "must be a UUID"))
			return
		}
		input.OrganizerID = &id
	}

	items, total, err := h.offerings.List(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[offeringResponse]{
		Items: mapSlice(items, toOfferingResponse),
		Total: total,
	})
}

// Get returns one offering.
// GET /offerings/{id}
func (h *OfferingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	o, err := h.offerings.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toOfferingResponse(o))
}

// Update applies a partial update.
// PATCH /offerings/{id}
func (h *OfferingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateOfferingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := offering.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Capacity:    req.Capacity,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if req.Status != nil {
		status := domain.OfferingStatus(*req.Status)
		input.Status = &status
	}

	o, err := h.offerings.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toOfferingResponse(o))
}

// Stats returns ledger statistics for the offering.
// GET /offerings/{id}/stats
func (h *OfferingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stats, err := h.insights.GetStats(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// ScanToken renders a fresh attendance token as a PNG QR code. The raw
// token is also returned in the X-Scan-Token header.
// GET /offerings/{id}/scan-token?action=signIn
func (h *OfferingHandler) ScanToken(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	action := domain.ScanAction(r.URL.Query().Get("action"))
	token, err := h.insights.IssueScanToken(r.Context(), id, action)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	png, err := h.qr.PNG(token)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Scan-Token", token)
	w.WriteHeader(http.StatusOK)
	w.Write(png) //nolint:errcheck
}

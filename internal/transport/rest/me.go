package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/notification"
	"github.com/heartmarshall/volunteer-backend/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

type historyService interface {
	ListMine(ctx context.Context, limit, offset int) ([]domain.ParticipationWithOffering, int, error)
}

type inboxService interface {
	ListMine(ctx context.Context, limit, offset int) (*notification.Inbox, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int, error)
}

// MeHandler serves the caller's own profile, history and inbox.
type MeHandler struct {
	profile profileService
	history historyService
	inbox   inboxService
	log     *slog.Logger
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(profile profileService, history historyService, inbox inboxService, logger *slog.Logger) *MeHandler {
	return &MeHandler{
		profile: profile,
		history: history,
		inbox:   inbox,
		log:     logger.With("handler", "me"),
	}
}

type updateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=255"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=female male other"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

type markAllReadResponse struct {
	Updated int `json:"updated"`
}

// Profile returns the caller's profile.
// GET /me
func (h *MeHandler) Profile(w http.ResponseWriter, r *http.Request) {
	u, err := h.profile.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateProfile changes the caller's name and demographics.
// PATCH /me
func (h *MeHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := user.UpdateProfileInput{Name: req.Name}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		input.Gender = &g
	}
	if req.BirthDate != nil {
		d, err := time.Parse(time.DateOnly, *req.BirthDate)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("birth_date", "must be YYYY-MM-DD"))
			return
		}
		input.BirthDate = &d
	}

	u, err := h.profile.UpdateProfile(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Participations returns the caller's participation history.
// GET /me/participations?limit=50&offset=0
func (h *MeHandler) Participations(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, total, err := h.history.ListMine(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[myParticipationResponse]{
		Items: mapSlice(items, toMyParticipationResponse),
		Total: total,
	})
}

// Notifications returns the caller's inbox.
// GET /me/notifications?limit=20&offset=0
func (h *MeHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	inbox, err := h.inbox.ListMine(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInboxResponse(inbox))
}

// MarkRead marks one notification read.
// POST /me/notifications/{id}/read
func (h *MeHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.inbox.MarkRead(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead marks every unread notification read.
// POST /me/notifications/read-all
func (h *MeHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.inbox.MarkAllRead(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, markAllReadResponse{Updated: n})
}

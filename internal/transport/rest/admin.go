package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/user"
)

type adminService interface {
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
	ListUsers(ctx context.Context, q user.ListUsersQuery) ([]domain.User, int, error)
	AuditHistory(ctx context.Context, q user.AuditQuery) ([]domain.AuditRecord, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	admin adminService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(admin adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		admin: admin,
		log:   logger.With("handler", "admin"),
	}
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=volunteer organizer admin"`
}

// Users lists users, optionally only those holding one role.
// GET /admin/users?role=organizer&limit=50&offset=0
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := page(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := user.ListUsersQuery{Limit: limit, Offset: offset}
	if v := queryString(r, "role"); v != nil {
		role := domain.UserRole(*v)
		q.Role = &role
	}

	users, total, err := h.admin.ListUsers(r.Context(), q)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[userResponse]{
		Items: mapSlice(users, toUserResponse),
		Total: total,
	})
}

// SetRole changes a user's role.
// PUT /admin/users/{id}/role
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req setRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.admin.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Audit returns audit records, newest first.
// GET /admin/audit?entity_type=PARTICIPATION&entity_id=...&actor_id=...&since=...&until=...&limit=50&offset=0
func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	q, err := auditQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	records, err := h.admin.AuditHistory(r.Context(), q)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(records, toAuditRecordResponse))
}

func auditQuery(r *http.Request) (user.AuditQuery, error) {
	var (
		q   = user.AuditQuery{EntityID: queryString(r, "entity_id")}
		err error
	)
	if q.Limit, q.Offset, err = page(r); err != nil {
		return q, err
	}
	if v := queryString(r, "entity_type"); v != nil {
		et := domain.EntityType(*v)
		q.EntityType = &et
	}
	if q.ActorID, err = queryUUID(r, "actor_id"); err != nil {
		return q, err
	}
	if q.Since, err = queryTime(r, "since"); err != nil {
		return q, err
	}
	if q.Until, err = queryTime(r, "until"); err != nil {
		return q, err
	}
	return q, nil
}

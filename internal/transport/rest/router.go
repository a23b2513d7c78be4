package rest

import (
	"net/http"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the API.
type Handlers struct {
	Health        *HealthHandler
	Offerings     *OfferingHandler
	Participation *ParticipationHandler
	Me            *MeHandler
	Admin         *AdminHandler
}

// NewMux registers all routes. scanLimit wraps the attendance endpoints,
// which are hit repeatedly from QR scanners; a nil scanLimit disables it.
func NewMux(h Handlers, scanLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Offerings
	mux.HandleFunc("POST /offerings", h.Offerings.Create)
	mux.HandleFunc("GET /offerings", h.Offerings.List)
	mux.HandleFunc("GET /offerings/{id}", h.Offerings.Get)
	mux.HandleFunc("PATCH /offerings/{id}", h.Offerings.Update)
	mux.HandleFunc("GET /offerings/{id}/stats", h.Offerings.Stats)
	mux.HandleFunc("GET /offerings/{id}/scan-token", h.Offerings.ScanToken)

	// Registration and approval
	mux.HandleFunc("POST /offerings/{id}/registrations", h.Participation.Register)
	mux.HandleFunc("DELETE /offerings/{id}/registrations", h.Participation.Cancel)
	mux.HandleFunc("GET /offerings/{id}/participants", h.Participation.Participants)
	mux.HandleFunc("POST /offerings/{id}/participants/{userID}/decision", h.Participation.Decide)
	mux.HandleFunc("POST /offerings/{id}/decisions", h.Participation.DecideBatch)

	// Attendance
	mux.Handle("POST /scan", middleware.Wrap(h.Participation.Scan, scanLimit))
	mux.Handle("POST /offerings/{id}/sign-in", middleware.Wrap(h.Participation.SignIn, scanLimit))
	mux.Handle("POST /offerings/{id}/sign-out", middleware.Wrap(h.Participation.SignOut, scanLimit))
	mux.HandleFunc("POST /offerings/{id}/confirm", h.Participation.Confirm)
	mux.HandleFunc("POST /offerings/{id}/evaluation", h.Participation.Evaluate)

	// Caller
	mux.HandleFunc("GET /me", h.Me.Profile)
	mux.HandleFunc("PATCH /me", h.Me.UpdateProfile)
	mux.HandleFunc("GET /me/participations", h.Me.Participations)
	mux.HandleFunc("GET /me/notifications", h.Me.Notifications)
	mux.HandleFunc("POST /me/notifications/read-all", h.Me.MarkAllRead)
	mux.HandleFunc("POST /me/notifications/{id}/read", h.Me.MarkRead)

	// Admin
	adminOnly := middleware.Roles(domain.UserRoleAdmin)
	mux.Handle("GET /admin/users", middleware.Wrap(h.Admin.Users, adminOnly))
	mux.Handle("PUT /admin/users/{id}/role", middleware.Wrap(h.Admin.SetRole, adminOnly))
	mux.Handle("GET /admin/audit", middleware.Wrap(h.Admin.Audit, adminOnly))

	return mux
}

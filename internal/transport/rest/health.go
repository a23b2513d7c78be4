package rest

import (
	"context"
	"net/http"
	"time"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"

	// notifierDegradedRatio marks the notifier degraded once the queue is this full.
	notifierDegradedRatio = 0.9

	healthPingTimeout = 3 * time.Second
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// notifierProbe exposes the notification dispatcher's state.
type notifierProbe interface {
	Running() bool
	Backlog() (queued, capacity int)
}

// HealthHandler serves the liveness, readiness and component health endpoints.
type HealthHandler struct {
	db       dbPinger
	notifier notifierProbe
	version  string
	now      func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, notifier notifierProbe, version string) *HealthHandler {
	return &HealthHandler{
		db:       db,
		notifier: notifier,
		version:  version,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Queued  *int   `json:"queued,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
// GET /live
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: statusOK, Timestamp: h.now()})
}

// Ready answers 503 until the database answers and the dispatcher accepts notifications.
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.checkDatabase(r.Context())
	notifier := h.checkNotifier()

	status, code := statusOK, http.StatusOK
	if db.Status == statusDown || notifier.Status == statusDown {
		status, code = statusDown, http.StatusServiceUnavailable
	}
	writeJSON(w, code, healthResponse{Status: status, Timestamp: h.now()})
}

// Health reports every component. A degraded notifier keeps 200; any
// component that is down turns the answer into 503.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]componentStatus{
		"database": h.checkDatabase(r.Context()),
		"notifier": h.checkNotifier(),
	}

	overall := statusOK
	for _, c := range components {
		switch c.Status {
		case statusDown:
			overall = statusDown
		case statusDegraded:
			if overall == statusOK {
				overall = statusDegraded
			}
		}
	}

	code := http.StatusOK
	if overall == statusDown {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, healthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) componentStatus {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return componentStatus{Status: statusDown}
	}
	return componentStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func (h *HealthHandler) checkNotifier() componentStatus {
	queued, capacity := h.notifier.Backlog()
	c := componentStatus{Status: statusOK, Queued: &queued}

	switch {
	case !h.notifier.Running():
		c.Status = statusDown
	case capacity > 0 && float64(queued) >= notifierDegradedRatio*float64(capacity):
		c.Status = statusDegraded
	}
	return c
}

package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
	"github.com/heartmarshall/volunteer-backend/internal/service/notification"
	"github.com/heartmarshall/volunteer-backend/internal/service/participation"
)

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type offeringResponse struct {
	ID              int64     `json:"id"`
	Kind            string    `json:"kind"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	OrganizerID     uuid.UUID `json:"organizer_id"`
	Capacity        int       `json:"capacity"`
	RegisteredCount int       `json:"registered_count"`
	RemainingSeats  int       `json:"remaining_seats"`
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toOfferingResponse(o *domain.Offering) offeringResponse {
	return offeringResponse{
		ID:              o.ID,
		Kind:            o.Kind.String(),
		Title:           o.Title,
		Description:     o.Description,
		OrganizerID:     o.OrganizerID,
		Capacity:        o.Capacity,
		RegisteredCount: o.RegisteredCount,
		RemainingSeats:  o.RemainingSeats(o.RegisteredCount),
		StartsAt:        o.StartsAt,
		EndsAt:          o.EndsAt,
		Status:          o.Status.String(),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type participationResponse struct {
	ID              uuid.UUID  `json:"id"`
	OfferingID      int64      `json:"offering_id"`
	UserID          uuid.UUID  `json:"user_id"`
	Status          string     `json:"status"`
	Attendance      string     `json:"attendance"`
	SignInAt        *time.Time `json:"sign_in_at,omitempty"`
	SignOutAt       *time.Time `json:"sign_out_at,omitempty"`
	DurationHours   *float64   `json:"duration_hours,omitempty"`
	Confirmed       bool       `json:"confirmed"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovalComment *string    `json:"approval_comment,omitempty"`
	Rating          *int       `json:"rating,omitempty"`
	Comment         *string    `json:"comment,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func toParticipationResponse(p *domain.Participation) participationResponse {
	return participationResponse{
		ID:              p.ID,
		OfferingID:      p.OfferingID,
		UserID:          p.UserID,
		Status:          p.Status.String(),
		Attendance:      p.AttendanceState().String(),
		SignInAt:        p.SignInAt,
		SignOutAt:       p.SignOutAt,
		DurationHours:   p.DurationHours,
		Confirmed:       p.Confirmed,
		ApprovedBy:      p.ApprovedBy,
		ApprovedAt:      p.ApprovedAt,
		ApprovalComment: p.ApprovalComment,
		Rating:          p.Rating,
		Comment:         p.Comment,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

type myParticipationResponse struct {
	participationResponse
	OfferingTitle    string    `json:"offering_title"`
	OfferingKind     string    `json:"offering_kind"`
	OfferingStatus   string    `json:"offering_status"`
	OfferingStartsAt time.Time `json:"offering_starts_at"`
	OfferingEndsAt   time.Time `json:"offering_ends_at"`
}

func toMyParticipationResponse(p *domain.ParticipationWithOffering) myParticipationResponse {
	return myParticipationResponse{
		participationResponse: toParticipationResponse(&p.Participation),
		OfferingTitle:         p.OfferingTitle,
		OfferingKind:          p.OfferingKind.String(),
		OfferingStatus:        p.OfferingStatus.String(),
		OfferingStartsAt:      p.OfferingStartsAt,
		OfferingEndsAt:        p.OfferingEndsAt,
	}
}

// participantResponse omits whatever the caller's role may not see.
type participantResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	Attendance      string     `json:"attendance,omitempty"`
	SignInAt        *time.Time `json:"sign_in_at,omitempty"`
	SignOutAt       *time.Time `json:"sign_out_at,omitempty"`
	DurationHours   *float64   `json:"duration_hours,omitempty"`
	Confirmed       bool       `json:"confirmed"`
	Rating          *int       `json:"rating,omitempty"`
	Comment         *string    `json:"comment,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Gender          *string    `json:"gender,omitempty"`
	BirthDate       *string    `json:"birth_date,omitempty"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovalComment *string    `json:"approval_comment,omitempty"`
}

func toParticipantResponse(v domain.ParticipantView) participantResponse {
	return participantResponse{
		UserID:          v.UserID,
		Name:            v.Name,
		Status:          v.Status.String(),
		Attendance:      v.Attendance.String(),
		SignInAt:        v.SignInAt,
		SignOutAt:       v.SignOutAt,
		DurationHours:   v.DurationHours,
		Confirmed:       v.Confirmed,
		Rating:          v.Rating,
		Comment:         v.Comment,
		Email:           v.Email,
		Gender:          genderString(v.Gender),
		BirthDate:       dateString(v.BirthDate),
		ApprovedBy:      v.ApprovedBy,
		ApprovedAt:      v.ApprovedAt,
		ApprovalComment: v.ApprovalComment,
	}
}

type scanResponse struct {
	Action        string   `json:"action"`
	Attendance    string   `json:"attendance"`
	Status        string   `json:"status"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
}

func toScanResponse(r *domain.ScanResult) scanResponse {
	return scanResponse{
		Action:        r.Action.String(),
		Attendance:    r.State.String(),
		Status:        r.Status.String(),
		DurationHours: r.DurationHours,
	}
}

type batchDecisionResponse struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
}

func toBatchDecisionResponse(r participation.BatchResult) batchDecisionResponse {
	return batchDecisionResponse{Applied: r.Applied, Skipped: r.Skipped}
}

type statsResponse struct {
	OfferingID     int64          `json:"offering_id"`
	Capacity       int            `json:"capacity"`
	RemainingSeats int            `json:"remaining_seats"`
	Registered     int            `json:"registered"`
	Attended       int            `json:"attended"`
	Completed      int            `json:"completed"`
	Confirmed      int            `json:"confirmed"`
	TotalHours     float64        `json:"total_hours"`
	AverageHours   float64        `json:"average_hours"`
	ByStatus       map[string]int `json:"by_status"`
	ByGender       map[string]int `json:"by_gender"`
	ByAgeBand      map[string]int `json:"by_age_band"`
}

func toStatsResponse(s *domain.OfferingStats) statsResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for status, n := range s.ByStatus {
		byStatus[status.String()] = n
	}
	return statsResponse{
		OfferingID:     s.OfferingID,
		Capacity:       s.Capacity,
		RemainingSeats: s.RemainingSeats,
		Registered:     s.Registered,
		Attended:       s.Attended,
		Completed:      s.Completed,
		Confirmed:      s.Confirmed,
		TotalHours:     s.TotalHours,
		AverageHours:   s.AverageHours,
		ByStatus:       byStatus,
		ByGender:       s.ByGender,
		ByAgeBand:      s.ByAgeBand,
	}
}

type userResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Gender         *string   `json:"gender,omitempty"`
	BirthDate      *string   `json:"birth_date,omitempty"`
	VolunteerHours float64   `json:"volunteer_hours"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role.String(),
		Gender:         genderString(u.Gender),
		BirthDate:      dateString(u.BirthDate),
		VolunteerHours: u.VolunteerHours,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

type notificationResponse struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Content           string     `json:"content"`
	Category          string     `json:"category"`
	RelatedOfferingID *int64     `json:"related_offering_id,omitempty"`
	ReadAt            *time.Time `json:"read_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type inboxResponse struct {
	Items  []notificationResponse `json:"items"`
	Total  int                    `json:"total"`
	Unread int                    `json:"unread"`
}

func toInboxResponse(in *notification.Inbox) inboxResponse {
	items := make([]notificationResponse, len(in.Items))
	for i, n := range in.Items {
		items[i] = notificationResponse{
			ID:                n.ID,
			Title:             n.Title,
			Content:           n.Content,
			Category:          n.Category.String(),
			RelatedOfferingID: n.RelatedOfferingID,
			ReadAt:            n.ReadAt,
			CreatedAt:         n.CreatedAt,
		}
	}
	return inboxResponse{Items: items, Total: in.Total, Unread: in.Unread}
}

type auditRecordResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"created_at"`
}

func toAuditRecordResponse(a *domain.AuditRecord) auditRecordResponse {
	return auditRecordResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		EntityType: a.EntityType.String(),
		EntityID:   a.EntityID,
		Action:     a.Action.String(),
		Changes:    a.Changes,
		CreatedAt:  a.CreatedAt,
	}
}

func genderString(g *domain.Gender) *string {
	if g == nil {
		return nil
	}
	s := g.String()
	return &s
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

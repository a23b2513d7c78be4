package participation

import (
	"fmt"
	"time"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// snapshot captures the full state of a record for a DELETE audit entry.
func snapshot(p *domain.Participation) map[string]any {
	return map[string]any{
		"offering_id":      p.OfferingID,
		"user_id":          p.UserID,
		"status":           p.Status,
		"approved_by":      p.ApprovedBy,
		"approved_at":      p.ApprovedAt,
		"approval_comment": p.ApprovalComment,
		"created_at":       p.CreatedAt,
	}
}

// buildChanges returns only the fields that differ between old and updated.
func buildChanges(old, updated *domain.Participation) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, o, n any) {
		changes[field] = map[string]any{"old": o, "new": n}
	}

	if old.Status != updated.Status {
		diff("status", old.Status, updated.Status)
	}
	if !sameTime(old.SignInAt, updated.SignInAt) {
		diff("sign_in_at", old.SignInAt, updated.SignInAt)
	}
	if !sameTime(old.SignOutAt, updated.SignOutAt) {
		diff("sign_out_at", old.SignOutAt, updated.SignOutAt)
	}
	if !samePtr(old.DurationHours, updated.DurationHours) {
		diff("duration_hours", old.DurationHours, updated.DurationHours)
	}
	if old.Confirmed != updated.Confirmed {
		diff("confirmed", old.Confirmed, updated.Confirmed)
	}
	if !samePtr(old.ApprovalComment, updated.ApprovalComment) {
		diff("approval_comment", old.ApprovalComment, updated.ApprovalComment)
	}
	if !samePtr(old.Rating, updated.Rating) {
		diff("rating", old.Rating, updated.Rating)
	}
	if !samePtr(old.Comment, updated.Comment) {
		diff("comment", old.Comment, updated.Comment)
	}
	return changes
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func samePtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ---------------------------------------------------------------------------
// Notification content
// ---------------------------------------------------------------------------

func decisionNotification(p *domain.Participation, title string) domain.Notification {
	var content string
	switch p.Status {
	case domain.RegistrationStatusApproved:
		content = fmt.Sprintf("Your registration for %q was approved.", title)
	default:
		content = fmt.Sprintf("Your registration for %q was rejected.", title)
	}
	if p.ApprovalComment != nil && *p.ApprovalComment != "" {
		content += " Comment: " + *p.ApprovalComment
	}

	offeringID := p.OfferingID
	return domain.Notification{
		UserID:            p.UserID,
		Title:             "Registration " + string(p.Status),
		Content:           content,
		Category:          domain.NotificationCategoryParticipation,
		RelatedOfferingID: &offeringID,
	}
}

func attendanceNotification(p *domain.Participation, title string, hours float64) domain.Notification {
	offeringID := p.OfferingID
	return domain.Notification{
		UserID:            p.UserID,
		Title:             "Attendance recorded",
		Content:           fmt.Sprintf("%.1f hours were recorded for %q. Please confirm the duration.", hours, title),
		Category:          domain.NotificationCategoryAttendance,
		RelatedOfferingID: &offeringID,
	}
}

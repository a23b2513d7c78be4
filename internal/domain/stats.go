package domain

import (
	"time"

	"github.com/google/uuid"
)

// Age bands used in demographic breakdowns.
const (
	AgeBandUnder18 = "<18"
	AgeBand18To25  = "18-25"
	AgeBand26To35  = "26-35"
	AgeBand36To50  = "36-50"
	AgeBand51Plus  = "51+"
	AgeBandUnknown = "unknown"
	GenderUnknown  = "unknown"
)

// AgeBand maps an age in years (negative for unknown) to its band label.
func AgeBand(age int) string {
	switch {
	case age < 0:
		return AgeBandUnknown
	case age < 18:
		return AgeBandUnder18
	case age <= 25:
		return AgeBand18To25
	case age <= 35:
		return AgeBand26To35
	case age <= 50:
		return AgeBand36To50
	}
	return AgeBand51Plus
}

// AgeBandAt returns the band of someone born on birth, measured at t.
// A nil birth date yields AgeBandUnknown.
func AgeBandAt(birth *time.Time, t time.Time) string {
	if birth == nil {
		return AgeBandUnknown
	}
	return AgeBand(AgeAt(*birth, t))
}

// StatsSummary holds the ledger totals for one offering.
type StatsSummary struct {
	Registered int
	Attended   int
	Completed  int
	Confirmed  int
	TotalHours float64
}

// OfferingStats is the read-only statistics view of one offering.
type OfferingStats struct {
	OfferingID     int64
	Capacity       int
	RemainingSeats int
	StatsSummary
	AverageHours float64
	ByStatus     map[RegistrationStatus]int
	ByGender     map[string]int
	ByAgeBand    map[string]int
}

// NewOfferingStats combines the summary and breakdowns into the stats view.
// Occupied seats are derived from the status breakdown.
func NewOfferingStats(o *Offering, sum StatsSummary, byStatus map[RegistrationStatus]int, byGender, byAge map[string]int) OfferingStats {
	occupied := 0
	for status, n := range byStatus {
		if status.OccupiesSeat() {
			occupied += n
		}
	}

	var avg float64
	if sum.Completed > 0 {
		avg = roundTenth(sum.TotalHours / float64(sum.Completed))
	}

	return OfferingStats{
		OfferingID:     o.ID,
		Capacity:       o.Capacity,
		RemainingSeats: o.RemainingSeats(occupied),
		StatsSummary:   sum,
		AverageHours:   avg,
		ByStatus:       byStatus,
		ByGender:       byGender,
		ByAgeBand:      byAge,
	}
}

func roundTenth(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}

// ParticipantRow is a ledger record joined with the participant's user attributes.
type ParticipantRow struct {
	Participation
	Name      string
	Email     string
	Gender    *Gender
	BirthDate *time.Time
}

// ParticipantView is a participant row reduced to the fields a role may see.
// Nil pointers mark fields hidden from the caller.
type ParticipantView struct {
	UserID          uuid.UUID
	Name            string
	Status          RegistrationStatus
	Attendance      AttendanceState
	SignInAt        *time.Time
	SignOutAt       *time.Time
	DurationHours   *float64
	Confirmed       bool
	Rating          *int
	Comment         *string
	Email           *string
	Gender          *Gender
	BirthDate       *time.Time
	ApprovedBy      *uuid.UUID
	ApprovedAt      *time.Time
	ApprovalComment *string
}

// ProjectParticipant maps a participant row to the view allowed for role.
// Organizers see attendance and evaluation; admins additionally see contact,
// demographic and approval metadata. Other roles see only name and status.
func ProjectParticipant(row ParticipantRow, role UserRole) ParticipantView {
	v := ParticipantView{
		UserID: row.UserID,
		Name:   row.Name,
		Status: row.Status,
	}

	if role != UserRoleOrganizer && role != UserRoleAdmin {
		return v
	}

	v.Attendance = row.AttendanceState()
	v.SignInAt = row.SignInAt
	v.SignOutAt = row.SignOutAt
	v.DurationHours = row.DurationHours
	v.Confirmed = row.Confirmed
	v.Rating = row.Rating
	v.Comment = row.Comment

	if role == UserRoleAdmin {
		email := row.Email
		v.Email = &email
		v.Gender = row.Gender
		v.BirthDate = row.BirthDate
		v.ApprovedBy = row.ApprovedBy
		v.ApprovedAt = row.ApprovedAt
		v.ApprovalComment = row.ApprovalComment
	}

	return v
}

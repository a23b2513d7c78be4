package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the local mirror of an identity-provider account, carrying the
// attributes the participation engine needs: role, demographics and the
// cumulative volunteer hour total.
type User struct {
	ID             uuid.UUID
	Email          string
	Name           string
	Role           UserRole
	Gender         *Gender
	BirthDate      *time.Time
	VolunteerHours float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfileUpdateParams carries a partial update of the demographic attributes.
type ProfileUpdateParams struct {
	Name      *string
	Gender    *Gender
	BirthDate *time.Time
}

// UserFilter selects users for the admin listing. A nil Role matches all roles.
type UserFilter struct {
	Role   *UserRole
	Limit  int
	Offset int
}

// AgeAt returns the number of full years between birth and t.
func AgeAt(birth, t time.Time) int {
	age := t.Year() - birth.Year()
	if t.Month() < birth.Month() || (t.Month() == birth.Month() && t.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

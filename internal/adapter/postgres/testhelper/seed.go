package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role and no demographics.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedVolunteer creates a volunteer with the given demographics.
func SeedVolunteer(t *testing.T, pool *pgxpool.Pool, gender domain.Gender, birthDate time.Time) domain.User {
	t.Helper()

	user := SeedUser(t, pool, domain.UserRoleVolunteer)
	_, err := pool.Exec(context.Background(),
		`UPDATE users SET gender = $2, birth_date = $3 WHERE id = $1`,
		user.ID, string(gender), birthDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVolunteer update demographics: %v", err)
	}

	user.Gender = &gender
	user.BirthDate = &birthDate
	return user
}

// OfferingOption customizes a seeded offering.
type OfferingOption func(*domain.Offering)

// WithKind sets the offering kind.
func WithKind(k domain.OfferingKind) OfferingOption {
	return func(o *domain.Offering) { o.Kind = k }
}

// WithStatus sets the offering status.
func WithStatus(s domain.OfferingStatus) OfferingOption {
	return func(o *domain.Offering) { o.Status = s }
}

// SeedOffering creates a recruiting activity owned by organizerID.
func SeedOffering(t *testing.T, pool *pgxpool.Pool, organizerID uuid.UUID, capacity int, opts ...OfferingOption) domain.Offering {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	o := domain.Offering{
		Kind:        domain.OfferingKindActivity,
		Title:       "Offering " + uniqueSuffix(),
		OrganizerID: organizerID,
		Capacity:    capacity,
		StartsAt:    now.Add(24 * time.Hour),
		EndsAt:      now.Add(27 * time.Hour),
		Status:      domain.OfferingStatusRecruiting,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO offerings (kind, title, organizer_id, capacity, starts_at, ends_at, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		string(o.Kind), o.Title, o.OrganizerID, o.Capacity, o.StartsAt, o.EndsAt, string(o.Status), o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedOffering insert: %v", err)
	}

	return o
}

// SeedParticipation inserts a pending participation record for the pair.
func SeedParticipation(t *testing.T, pool *pgxpool.Pool, offeringID int64, userID uuid.UUID) domain.Participation {
	t.Helper()

	p := domain.NewParticipation(offeringID, userID, time.Now().UTC().Truncate(time.Microsecond))

	_, err := pool.Exec(context.Background(),
		`INSERT INTO participations (id, offering_id, user_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.OfferingID, p.UserID, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedParticipation insert: %v", err)
	}

	return p
}

// SetSignIn moves the record's sign-in time, for duration tests.
func SetSignIn(t *testing.T, pool *pgxpool.Pool, participationID uuid.UUID, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE participations SET sign_in_at = $2, status = 'approved' WHERE id = $1`,
		participationID, at,
	)
	if err != nil {
		t.Fatalf("testhelper: SetSignIn: %v", err)
	}
}

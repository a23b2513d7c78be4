// Package user implements the User repository using PostgreSQL, including
// the cumulative volunteer-hour aggregate.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new user repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const userColumns = `id, email, name, role, gender, birth_date, volunteer_hours, created_at, updated_at`

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

const updateProfileSQL = `
UPDATE users SET
    name       = COALESCE($2, name),
    gender     = COALESCE($3, gender),
    birth_date = COALESCE($4, birth_date),
    updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const updateRoleSQL = `
UPDATE users SET role = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const updateRoleByEmailSQL = `
UPDATE users SET role = $2, updated_at = now()
WHERE lower(email) = lower($1)
RETURNING ` + userColumns

// addHoursSQL increments the total server-side so concurrent sign-outs
// for the same user never overwrite each other.
const addHoursSQL = `
UPDATE users SET volunteer_hours = volunteer_hours + $2, updated_at = now()
WHERE id = $1`

const recomputeHoursSQL = `
UPDATE users u SET volunteer_hours = t.total, updated_at = now()
FROM (
    SELECT usr.id, COALESCE(SUM(p.duration_hours), 0) AS total
    FROM users usr
    LEFT JOIN participations p ON p.user_id = usr.id AND p.sign_out_at IS NOT NULL
    GROUP BY usr.id
) t
WHERE u.id = t.id AND u.volunteer_hours <> t.total`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

// ListUsers returns the users matching f, newest first.
func (r *Repo) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := filterUsers(psql.Select(userColumns).From("users"), f.Role).
		OrderBy("created_at DESC", "id").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CountUsers returns how many users hold role, or all users when role is nil.
func (r *Repo) CountUsers(ctx context.Context, role *domain.UserRole) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := filterUsers(psql.Select("count(*)").From("users"), role).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func filterUsers(b sq.SelectBuilder, role *domain.UserRole) sq.SelectBuilder {
	if role != nil {
		b = b.Where(sq.Eq{"role": string(*role)})
	}
	return b
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpdateProfile applies the non-nil fields of params.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, params domain.ProfileUpdateParams) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var gender *string
	if params.Gender != nil {
		g := params.Gender.String()
		gender = &g
	}

	u, err := scanUser(q.QueryRow(ctx, updateProfileSQL, id, params.Name, gender, params.BirthDate))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// UpdateRole sets the user's role.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateRoleSQL, id, role.String()))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// UpdateRoleByEmail sets the role of the user with the given email.
func (r *Repo) UpdateRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateRoleByEmailSQL, email, role.String()))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

// AddVolunteerHours atomically adds delta to the user's cumulative total.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) AddVolunteerHours(ctx context.Context, id uuid.UUID, delta float64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addHoursSQL, id, delta)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RecomputeVolunteerHours rebuilds every drifted total from the ledger and
// returns the number of users corrected.
func (r *Repo) RecomputeVolunteerHours(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, recomputeHoursSQL)
	if err != nil {
		return 0, fmt.Errorf("recompute volunteer hours: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u      domain.User
		role   string
		gender *string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &gender, &u.BirthDate, &u.VolunteerHours, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}

	u.Role = domain.UserRole(role)
	if gender != nil {
		g := domain.Gender(*gender)
		u.Gender = &g
	}
	return u, nil
}

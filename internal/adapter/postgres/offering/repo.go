// Package offering implements the Offering repository using PostgreSQL.
package offering

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// Repo provides offering persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new offering repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const offeringColumns = `o.id, o.kind, o.title, o.description, o.organizer_id, o.capacity,
    o.starts_at, o.ends_at, o.status, o.created_at, o.updated_at`

// registeredCountExpr counts the records currently holding a seat.
const registeredCountExpr = `(SELECT count(*) FROM participations p
    WHERE p.offering_id = o.id AND p.status IN ('pending', 'approved', 'completed')) AS registered_count`

const createSQL = `
INSERT INTO offerings AS o (kind, title, description, organizer_id, capacity, starts_at, ends_at, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + offeringColumns + `, 0::bigint AS registered_count`

const getByIDSQL = `SELECT ` + offeringColumns + `, ` + registeredCountExpr + ` FROM offerings o WHERE o.id = $1`

// getForUpdateSQL locks the offering row for the rest of the transaction.
// Every capacity check for the offering serializes on this lock.
const getForUpdateSQL = `SELECT ` + offeringColumns + `, 0::bigint AS registered_count FROM offerings o WHERE o.id = $1 FOR UPDATE`

const updateSQL = `
UPDATE offerings AS o SET
    title       = $2,
    description = $3,
    capacity    = $4,
    starts_at   = $5,
    ends_at     = $6,
    status      = $7,
    updated_at  = $8
WHERE o.id = $1
RETURNING ` + offeringColumns + `, ` + registeredCountExpr

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type offeringRow struct {
	ID              int64     `db:"id"`
	Kind            string    `db:"kind"`
	Title           string    `db:"title"`
	Description     *string   `db:"description"`
	OrganizerID     uuid.UUID `db:"organizer_id"`
	Capacity        int       `db:"capacity"`
	StartsAt        time.Time `db:"starts_at"`
	EndsAt          time.Time `db:"ends_at"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
	RegisteredCount int       `db:"registered_count"`
}

func (r offeringRow) toDomain() *domain.Offering {
	return &domain.Offering{
		ID:              r.ID,
		Kind:            domain.OfferingKind(r.Kind),
		Title:           r.Title,
		Description:     r.Description,
		OrganizerID:     r.OrganizerID,
		Capacity:        r.Capacity,
		StartsAt:        r.StartsAt,
		EndsAt:          r.EndsAt,
		Status:          domain.OfferingStatus(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		RegisteredCount: r.RegisteredCount,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an offering with its current registered count.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Offering, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetByIDForUpdate returns the offering and holds a row lock until the
// surrounding transaction ends. RegisteredCount is not populated.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Offering, error) {
	return r.get(ctx, getForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, query string, id int64) (*domain.Offering, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row offeringRow
	if err := pgxscan.Get(ctx, q, &row, query, id); err != nil {
		return nil, postgres.MapError(err, "offering", id)
	}
	return row.toDomain(), nil
}

// List returns offerings matching the filter ordered by start time, plus
// the total number of matches ignoring pagination.
func (r *Repo) List(ctx context.Context, f domain.OfferingFilter) ([]domain.Offering, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.Status != nil {
		where = append(where, sq.Eq{"o.status": string(*f.Status)})
	}
	if f.Kind != nil {
		where = append(where, sq.Eq{"o.kind": string(*f.Kind)})
	}
	if f.OrganizerID != nil {
		where = append(where, sq.Eq{"o.organizer_id": *f.OrganizerID})
	}

	countQuery, countArgs, err := psql.Select("count(*)").From("offerings o").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build offering count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count offerings: %w", err)
	}

	b := psql.Select(offeringColumns, registeredCountExpr).
		From("offerings o").
		Where(where).
		OrderBy("o.starts_at", "o.id")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build offering list: %w", err)
	}

	var rows []offeringRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list offerings: %w", err)
	}

	out := make([]domain.Offering, len(rows))
	for i, row := range rows {
		out[i] = *row.toDomain()
	}
	return out, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new offering and returns it with the assigned id.
func (r *Repo) Create(ctx context.Context, o domain.Offering) (*domain.Offering, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := o.CreatedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var row offeringRow
	err := pgxscan.Get(ctx, q, &row, createSQL,
		string(o.Kind), o.Title, o.Description, o.OrganizerID, o.Capacity,
		o.StartsAt, o.EndsAt, string(o.Status), now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "offering", o.Title)
	}
	return row.toDomain(), nil
}

// Update writes all mutable fields of o.
func (r *Repo) Update(ctx context.Context, o domain.Offering) (*domain.Offering, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updatedAt := o.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	var row offeringRow
	err := pgxscan.Get(ctx, q, &row, updateSQL,
		o.ID, o.Title, o.Description, o.Capacity, o.StartsAt, o.EndsAt, string(o.Status), updatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "offering", o.ID)
	}
	return row.toDomain(), nil
}

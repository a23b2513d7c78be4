// Package participation implements the participation ledger using PostgreSQL:
// registrations, approval decisions, attendance timestamps and the
// aggregate queries behind offering statistics.
package participation

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

// Repo provides participation persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new participation repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const participationColumns = `p.id, p.offering_id, p.user_id, p.status, p.sign_in_at, p.sign_out_at,
    p.duration_hours, p.confirmed, p.approved_by, p.approved_at, p.approval_comment,
    p.rating, p.comment, p.created_at, p.updated_at`

const createSQL = `
INSERT INTO participations AS p (id, offering_id, user_id, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + participationColumns

const getByPairSQL = `SELECT ` + participationColumns + `
FROM participations p WHERE p.offering_id = $1 AND p.user_id = $2`

const getByPairForUpdateSQL = getByPairSQL + ` FOR UPDATE`

const countOccupyingSQL = `
SELECT count(*) FROM participations
WHERE offering_id = $1 AND status IN ('pending', 'approved', 'completed')`

const updateSQL = `
UPDATE participations AS p SET
    status           = $2,
    sign_in_at       = $3,
    sign_out_at      = $4,
    duration_hours   = $5,
    confirmed        = $6,
    approved_by      = $7,
    approved_at      = $8,
    approval_comment = $9,
    rating           = $10,
    comment          = $11,
    updated_at       = $12
WHERE p.id = $1
RETURNING ` + participationColumns

const deleteSQL = `DELETE FROM participations WHERE id = $1`

// decidePendingSQL applies one decision to every pending record of the
// listed users in a single statement; other records are left untouched.
const decidePendingSQL = `
UPDATE participations AS p SET
    status           = $3,
    approved_by      = $4,
    approved_at      = $5,
    approval_comment = $6,
    updated_at       = $5
WHERE p.offering_id = $1 AND p.user_id = ANY($2::uuid[]) AND p.status = 'pending'
RETURNING ` + participationColumns

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type participationRow struct {
	ID              uuid.UUID  `db:"id"`
	OfferingID      int64      `db:"offering_id"`
	UserID          uuid.UUID  `db:"user_id"`
	Status          string     `db:"status"`
	SignInAt        *time.Time `db:"sign_in_at"`
	SignOutAt       *time.Time `db:"sign_out_at"`
	DurationHours   *float64   `db:"duration_hours"`
	Confirmed       bool       `db:"confirmed"`
	ApprovedBy      *uuid.UUID `db:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at"`
	ApprovalComment *string    `db:"approval_comment"`
	Rating          *int       `db:"rating"`
	Comment         *string    `db:"comment"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r participationRow) toDomain() domain.Participation {
	return domain.Participation{
		ID:              r.ID,
		OfferingID:      r.OfferingID,
		UserID:          r.UserID,
		Status:          domain.RegistrationStatus(r.Status),
		SignInAt:        r.SignInAt,
		SignOutAt:       r.SignOutAt,
		DurationHours:   r.DurationHours,
		Confirmed:       r.Confirmed,
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      r.ApprovedAt,
		ApprovalComment: r.ApprovalComment,
		Rating:          r.Rating,
		Comment:         r.Comment,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

type participantRow struct {
	participationRow
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Gender    *string    `db:"gender"`
	BirthDate *time.Time `db:"birth_date"`
}

type mineRow struct {
	participationRow
	OfferingTitle    string    `db:"offering_title"`
	OfferingKind     string    `db:"offering_kind"`
	OfferingStatus   string    `db:"offering_status"`
	OfferingStartsAt time.Time `db:"offering_starts_at"`
	OfferingEndsAt   time.Time `db:"offering_ends_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByPair returns the record of userID for offeringID.
func (r *Repo) GetByPair(ctx context.Context, offeringID int64, userID uuid.UUID) (*domain.Participation, error) {
	return r.getOne(ctx, getByPairSQL, offeringID, userID)
}

// GetByPairForUpdate returns the record and holds a row lock until the
// surrounding transaction ends.
func (r *Repo) GetByPairForUpdate(ctx context.Context, offeringID int64, userID uuid.UUID) (*domain.Participation, error) {
	return r.getOne(ctx, getByPairForUpdateSQL, offeringID, userID)
}

func (r *Repo) getOne(ctx context.Context, query string, offeringID int64, userID uuid.UUID) (*domain.Participation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row participationRow
	if err := pgxscan.Get(ctx, q, &row, query, offeringID, userID); err != nil {
		return nil, postgres.MapError(err, "participation", fmt.Sprintf("%d/%s", offeringID, userID))
	}
	p := row.toDomain()
	return &p, nil
}

// CountOccupying returns the number of records holding a seat in the offering.
func (r *Repo) CountOccupying(ctx context.Context, offeringID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countOccupyingSQL, offeringID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count occupying participations: %w", err)
	}
	return n, nil
}

// ListByOffering returns the offering's records joined with participant
// attributes, optionally narrowed to one status, oldest registration first.
func (r *Repo) ListByOffering(ctx context.Context, offeringID int64, status *domain.RegistrationStatus, limit, offset int) ([]domain.ParticipantRow, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"p.offering_id": offeringID}}
	if status != nil {
		where = append(where, sq.Eq{"p.status": string(*status)})
	}

	countQuery, countArgs, err := psql.Select("count(*)").From("participations p").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build participant count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count participants: %w", err)
	}

	b := psql.Select(participationColumns, "u.name", "u.email", "u.gender", "u.birth_date").
		From("participations p").
		Join("users u ON u.id = p.user_id").
		Where(where).
		OrderBy("p.created_at", "p.id")
	b = paginate(b, limit, offset)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build participant list: %w", err)
	}

	var rows []participantRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list participants: %w", err)
	}

	out := make([]domain.ParticipantRow, len(rows))
	for i, row := range rows {
		out[i] = domain.ParticipantRow{
			Participation: row.toDomain(),
			Name:          row.Name,
			Email:         row.Email,
			BirthDate:     row.BirthDate,
		}
		if row.Gender != nil {
			g := domain.Gender(*row.Gender)
			out[i].Gender = &g
		}
	}
	return out, total, nil
}

// ListByUser returns the user's records with offering summaries, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ParticipationWithOffering, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM participations WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count user participations: %w", err)
	}

	b := psql.Select(participationColumns,
		"o.title AS offering_title", "o.kind AS offering_kind", "o.status AS offering_status",
		"o.starts_at AS offering_starts_at", "o.ends_at AS offering_ends_at").
		From("participations p").
		Join("offerings o ON o.id = p.offering_id").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("p.created_at DESC", "p.id")
	b = paginate(b, limit, offset)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build user participation list: %w", err)
	}

	var rows []mineRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list user participations: %w", err)
	}

	out := make([]domain.ParticipationWithOffering, len(rows))
	for i, row := range rows {
		out[i] = domain.ParticipationWithOffering{
			Participation:    row.toDomain(),
			OfferingTitle:    row.OfferingTitle,
			OfferingKind:     domain.OfferingKind(row.OfferingKind),
			OfferingStatus:   domain.OfferingStatus(row.OfferingStatus),
			OfferingStartsAt: row.OfferingStartsAt,
			OfferingEndsAt:   row.OfferingEndsAt,
		}
	}
	return out, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record. A second record for the same pair fails
// with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.Participation) (*domain.Participation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row participationRow
	err := pgxscan.Get(ctx, q, &row, createSQL, p.ID, p.OfferingID, p.UserID, string(p.Status), p.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "participation", p.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Update writes every mutable column of p.
func (r *Repo) Update(ctx context.Context, p domain.Participation) (*domain.Participation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row participationRow
	err := pgxscan.Get(ctx, q, &row, updateSQL,
		p.ID, string(p.Status), p.SignInAt, p.SignOutAt, p.DurationHours, p.Confirmed,
		p.ApprovedBy, p.ApprovedAt, p.ApprovalComment, p.Rating, p.Comment, p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "participation", p.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes a record. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "participation", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participation %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DecidePending applies the decision to the pending records of userIDs and
// returns the records that changed. Users without a pending record are skipped.
func (r *Repo) DecidePending(ctx context.Context, offeringID int64, userIDs []uuid.UUID, d domain.Decision, actorID uuid.UUID, comment *string, now time.Time) ([]domain.Participation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []participationRow
	err := pgxscan.Select(ctx, q, &rows, decidePendingSQL,
		offeringID, userIDs, string(d.Status()), actorID, now, comment,
	)
	if err != nil {
		return nil, fmt.Errorf("decide pending participations: %w", err)
	}

	out := make([]domain.Participation, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func paginate(b sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	if offset > 0 {
		b = b.Offset(uint64(offset))
	}
	return b
}

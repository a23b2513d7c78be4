package participation

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// occupyingFilter matches records that hold a seat.
var occupyingFilter = sq.Eq{"p.status": []string{
	string(domain.RegistrationStatusPending),
	string(domain.RegistrationStatusApproved),
	string(domain.RegistrationStatusCompleted),
}}

type summaryRow struct {
	Registered int     `db:"registered"`
	Attended   int     `db:"attended"`
	Completed  int     `db:"completed"`
	Confirmed  int     `db:"confirmed"`
	TotalHours float64 `db:"total_hours"`
}

type birthRow struct {
	BirthDate *time.Time `db:"birth_date"`
}

type bucketRow struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

// Summary returns the ledger totals of one offering. Attended counts
// sign-ins, completed counts sign-outs.
func (r *Repo) Summary(ctx context.Context, offeringID int64) (domain.StatsSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(
		"count(*) FILTER (WHERE p.status IN ('pending', 'approved', 'completed')) AS registered",
		"count(*) FILTER (WHERE p.sign_in_at IS NOT NULL) AS attended",
		"count(*) FILTER (WHERE p.sign_out_at IS NOT NULL) AS completed",
		"count(*) FILTER (WHERE p.confirmed) AS confirmed",
		"COALESCE(SUM(p.duration_hours), 0)::float8 AS total_hours",
	).From("participations p").Where(sq.Eq{"p.offering_id": offeringID}).ToSql()
	if err != nil {
		return domain.StatsSummary{}, fmt.Errorf("build stats summary: %w", err)
	}

	var row summaryRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return domain.StatsSummary{}, fmt.Errorf("stats summary: %w", err)
	}
	return domain.StatsSummary(row), nil
}

// StatusBreakdown counts every record of the offering by registration status.
func (r *Repo) StatusBreakdown(ctx context.Context, offeringID int64) (map[domain.RegistrationStatus]int, error) {
	buckets, err := r.breakdown(ctx, "p.status", psql.Select().From("participations p").
		Where(sq.Eq{"p.offering_id": offeringID}))
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}

	out := make(map[domain.RegistrationStatus]int, len(buckets))
	for k, v := range buckets {
		out[domain.RegistrationStatus(k)] = v
	}
	return out, nil
}

// GenderBreakdown counts seat-holding participants by gender.
func (r *Repo) GenderBreakdown(ctx context.Context, offeringID int64) (map[string]int, error) {
	keyExpr := fmt.Sprintf("COALESCE(u.gender, '%s')", domain.GenderUnknown)
	buckets, err := r.breakdown(ctx, keyExpr, psql.Select().From("participations p").
		Join("users u ON u.id = p.user_id").
		Where(sq.And{sq.Eq{"p.offering_id": offeringID}, occupyingFilter}))
	if err != nil {
		return nil, fmt.Errorf("gender breakdown: %w", err)
	}
	return buckets, nil
}

// AgeBandBreakdown counts seat-holding participants by age band at asOf.
func (r *Repo) AgeBandBreakdown(ctx context.Context, offeringID int64, asOf time.Time) (map[string]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select("u.birth_date").
		From("participations p").
		Join("users u ON u.id = p.user_id").
		Where(sq.And{sq.Eq{"p.offering_id": offeringID}, occupyingFilter}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build age band breakdown: %w", err)
	}

	var rows []birthRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("age band breakdown: %w", err)
	}

	asOf = asOf.UTC()
	out := make(map[string]int)
	for _, row := range rows {
		out[domain.AgeBandAt(row.BirthDate, asOf)]++
	}
	return out, nil
}

func (r *Repo) breakdown(ctx context.Context, keyExpr string, b sq.SelectBuilder) (map[string]int, error) {
	return r.collectBuckets(ctx, b.Columns(keyExpr+" AS key", "count(*) AS count").GroupBy("1"))
}

func (r *Repo) collectBuckets(ctx context.Context, b sq.SelectBuilder) (map[string]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []bucketRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}

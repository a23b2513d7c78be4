// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new audit repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const auditColumns = `id, user_id, entity_type, entity_id, action, changes, created_at`

const createAuditSQL = `
INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + auditColumns

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	row := q.QueryRow(ctx, createAuditSQL,
		record.ID, record.UserID, string(record.EntityType), record.EntityID,
		string(record.Action), changesJSON, record.CreatedAt,
	)
	got, err := scanRecord(row)
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return got, nil
}

// Log creates an audit record without returning it.
// Called inside the transaction of the mutation it describes.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns audit records matching the filter, newest first. A zero
// Limit returns every match.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Select(auditColumns).From("audit_log").OrderBy("created_at DESC", "id")
	if f.EntityType != nil {
		b = b.Where(sq.Eq{"entity_type": string(*f.EntityType)})
	}
	if f.EntityID != nil {
		b = b.Where(sq.Eq{"entity_id": *f.EntityID})
	}
	if f.UserID != nil {
		b = b.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.Since != nil {
		b = b.Where(sq.GtOrEq{"created_at": *f.Since})
	}
	if f.Until != nil {
		b = b.Where(sq.Lt{"created_at": *f.Until})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	return collectRecords(rows)
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func collectRecords(rows pgx.Rows) ([]domain.AuditRecord, error) {
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit_records: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}

	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		m := make(map[string]any)
		if err := json.Unmarshal(changes, &m); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
		rec.Changes = m
	}
	return rec, nil
}

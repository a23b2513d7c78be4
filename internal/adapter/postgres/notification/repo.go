// Package notification implements the in-app notification inbox using PostgreSQL.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new notification repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const notificationColumns = `id, user_id, title, content, category, related_offering_id, read_at, created_at`

const createSQL = `
INSERT INTO notifications (id, user_id, title, content, category, related_offering_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// ULIDs sort by creation time, so id DESC is newest first.
const listByUserSQL = `
SELECT ` + notificationColumns + `
FROM notifications
WHERE user_id = $1
ORDER BY id DESC
LIMIT $2 OFFSET $3`

const countByUserSQL = `
SELECT count(*), count(*) FILTER (WHERE read_at IS NULL)
FROM notifications WHERE user_id = $1`

const markReadSQL = `
UPDATE notifications SET read_at = COALESCE(read_at, $3)
WHERE id = $1 AND user_id = $2`

const markAllReadSQL = `
UPDATE notifications SET read_at = $2
WHERE user_id = $1 AND read_at IS NULL`

const deleteReadBeforeSQL = `
DELETE FROM notifications WHERE read_at IS NOT NULL AND read_at < $1`

type notificationRow struct {
	ID                string     `db:"id"`
	UserID            uuid.UUID  `db:"user_id"`
	Title             string     `db:"title"`
	Content           string     `db:"content"`
	Category          string     `db:"category"`
	RelatedOfferingID *int64     `db:"related_offering_id"`
	ReadAt            *time.Time `db:"read_at"`
	CreatedAt         time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a notification. The caller assigns the id.
func (r *Repo) Create(ctx context.Context, n domain.Notification) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL,
		n.ID, n.UserID, n.Title, n.Content, string(n.Category), n.RelatedOfferingID, n.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}
	return nil
}

// MarkRead marks one of the user's notifications as read. Marking an already
// read notification keeps the original read time. Returns domain.ErrNotFound
// if the notification does not exist or belongs to another user.
func (r *Repo) MarkRead(ctx context.Context, userID uuid.UUID, id string, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markReadSQL, id, userID, at)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markAllReadSQL, userID, at)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteReadBefore purges notifications read before the cutoff.
func (r *Repo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteReadBeforeSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the user's notifications newest first, together with
// the total and unread counts.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, int, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total, unread int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&total, &unread); err != nil {
		return nil, 0, 0, fmt.Errorf("count notifications: %w", err)
	}

	var rows []notificationRow
	if err := pgxscan.Select(ctx, q, &rows, listByUserSQL, userID, limit, offset); err != nil {
		return nil, 0, 0, fmt.Errorf("list notifications: %w", err)
	}

	items := make([]domain.Notification, len(rows))
	for i, row := range rows {
		items[i] = domain.Notification{
			ID:                row.ID,
			UserID:            row.UserID,
			Title:             row.Title,
			Content:           row.Content,
			Category:          domain.NotificationCategory(row.Category),
			RelatedOfferingID: row.RelatedOfferingID,
			ReadAt:            row.ReadAt,
			CreatedAt:         row.CreatedAt,
		}
	}
	return items, total, unread, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATEs after which the whole transaction may simply be replayed.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

const (
	defaultTxAttempts = 3
	defaultTxBackoff  = 20 * time.Millisecond
)

// txBeginner is satisfied by *pgxpool.Pool and pgxmock pools.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxOption tunes a TxManager.
type TxOption func(*TxManager)

// WithMaxAttempts bounds how many times a transaction that lost a lock race
// is replayed. Values below 1 disable replays.
func WithMaxAttempts(n int) TxOption {
	return func(m *TxManager) {
		if n < 1 {
			n = 1
		}
		m.attempts = n
	}
}

// WithRetryBackoff sets the pause before the first replay; it doubles for
// every following attempt.
func WithRetryBackoff(d time.Duration) TxOption {
	return func(m *TxManager) { m.backoff = d }
}

// TxManager runs callbacks inside a transaction carried by the context.
// Admission and attendance paths lock the offering row, so two concurrent
// registrations can deadlock; such transactions are replayed from scratch.
type TxManager struct {
	pool     txBeginner
	attempts int
	backoff  time.Duration
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool txBeginner, opts ...TxOption) *TxManager {
	m := &TxManager{pool: pool, attempts: defaultTxAttempts, backoff: defaultTxBackoff}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx executes fn within a Read Committed transaction.
// A call nested inside another RunInTx callback joins the outer transaction
// and is never replayed on its own. fn must not have side effects outside
// the database: it may run more than once.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	wait := m.backoff
	var err error
	for attempt := 1; ; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || attempt >= m.attempts || !IsRetryable(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry transaction: %w (last error: %v)", ctx.Err(), err)
		case <-time.After(wait):
		}
		wait *= 2
	}
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// IsRetryable reports whether err is a serialization failure or a deadlock
// reported by PostgreSQL.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

package notification

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/volunteer-backend/internal/domain"
)

type notificationStore interface {
	Create(ctx context.Context, n domain.Notification) error
}

// DispatcherConfig sizes the delivery queue and worker pool.
type DispatcherConfig struct {
	QueueSize       int
	Workers         int
	DeliveryTimeout time.Duration
}

// Dispatcher delivers notifications asynchronously. Callers enqueue after
// their transaction has committed; delivery runs on worker goroutines and
// its failures are logged, never returned to the caller.
type Dispatcher struct {
	store   notificationStore
	queue   chan domain.Notification
	workers int
	timeout time.Duration
	log     *slog.Logger
	now     func() time.Time

	mu      sync.RWMutex
	closed  bool
	group   *errgroup.Group
	idMu    sync.Mutex
	entropy io.Reader
}

// NewDispatcher creates a dispatcher. Call Start before enqueueing.
func NewDispatcher(log *slog.Logger, store notificationStore, cfg DispatcherConfig) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = 5 * time.Second
	}

	return &Dispatcher{
		store:   store,
		queue:   make(chan domain.Notification, cfg.QueueSize),
		workers: cfg.Workers,
		timeout: cfg.DeliveryTimeout,
		log:     log.With("service", "notification_dispatcher"),
		now:     func() time.Time { return time.Now().UTC() },
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Start launches the worker goroutines. Workers keep draining the queue
// until Stop is called, independent of ctx cancellation, so that queued
// notifications are not lost on shutdown.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.group != nil {
		return
	}

	d.group = &errgroup.Group{}
	base := context.WithoutCancel(ctx)
	for range d.workers {
		d.group.Go(func() error {
			for n := range d.queue {
				d.deliver(base, n)
			}
			return nil
		})
	}

	d.log.InfoContext(ctx, "notification dispatcher started", slog.Int("workers", d.workers))
}

// Enqueue assigns an id and timestamp to n and queues it for delivery.
// It never blocks: when the queue is full or the dispatcher is stopped the
// notification is dropped and false is returned.
func (d *Dispatcher) Enqueue(n domain.Notification) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}

	now := d.now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	if n.ID == "" {
		id, err := d.newID(n.CreatedAt)
		if err != nil {
			d.log.Error("generate notification id", slog.String("error", err.Error()))
			return false
		}
		n.ID = id
	}

	select {
	case d.queue <- n:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for the workers to drain it or for ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	group := d.group
	d.mu.Unlock()

	if group == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- group.Wait() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("notification dispatcher stop: %w", ctx.Err())
	}
}

// Backlog reports the number of queued notifications and the queue capacity.
func (d *Dispatcher) Backlog() (queued, capacity int) {
	return len(d.queue), cap(d.queue)
}

// Running reports whether the workers are started and the queue is open.
func (d *Dispatcher) Running() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.group != nil && !d.closed
}

func (d *Dispatcher) deliver(ctx context.Context, n domain.Notification) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.store.Create(ctx, n); err != nil {
		d.log.ErrorContext(ctx, "notification delivery failed",
			slog.String("notification_id", n.ID),
			slog.String("user_id", n.UserID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	d.log.DebugContext(ctx, "notification delivered",
		slog.String("notification_id", n.ID),
		slog.String("user_id", n.UserID.String()),
	)
}

// newID returns a ULID for t. Monotonic entropy is not safe for concurrent use.
func (d *Dispatcher) newID(t time.Time) (string, error) {
	d.idMu.Lock()
	defer d.idMu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t), d.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

package notify

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"ordercore/internal/core/ports"
)

// ErrQueueFull is returned by Publish when the event cannot be enqueued.
// Callers treat it as a logged, non-fatal condition.
var ErrQueueFull = errors.New("notification queue is full")

const (
	defaultQueueSize   = 256
	defaultMaxAttempts = 5
	defaultRetryBase   = 30 * time.Second
)

// pendingEvent is an event waiting for delivery or redelivery.
type pendingEvent struct {
	event       ports.OrderEvent
	attempts    int
	nextAttempt time.Time
}

// Dispatcher is the in-memory asynchronous channel between order mutations and
// the notification transport. Publish never blocks beyond a channel send into
// a buffered queue; a single worker goroutine drains the queue. Failed
// deliveries are parked and swept back into the queue by RedeliverPending with
// exponential backoff, until maxAttempts is exhausted.
type Dispatcher struct {
	publisher   Publisher
	logger      *slog.Logger
	queue       chan pendingEvent
	maxAttempts int
	retryBase   time.Duration

	mu     sync.Mutex
	failed []pendingEvent

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewDispatcher creates a dispatcher delivering through the given publisher.
// Zero values for queueSize, maxAttempts, and retryBase select the defaults.
func NewDispatcher(
	publisher Publisher,
	logger *slog.Logger,
	queueSize int,
	maxAttempts int,
	retryBase time.Duration,
) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if retryBase <= 0 {
		retryBase = defaultRetryBase
	}

	return &Dispatcher{
		publisher:   publisher,
		logger:      logger.With("component", "notify.dispatcher"),
		queue:       make(chan pendingEvent, queueSize),
		maxAttempts: maxAttempts,
		retryBase:   retryBase,
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the delivery worker.
func (d *Dispatcher) Start() {
	go d.run()
}

// Stop shuts the worker down and waits for it to drain the queue.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)
	})
	<-d.done
}

// Publish enqueues the event for asynchronous delivery. Returns ErrQueueFull
// when the buffer has no room; the event is dropped in that case.
func (d *Dispatcher) Publish(_ context.Context, event ports.OrderEvent) error {
	select {
	case d.queue <- pendingEvent{event: event}:
		return nil
	default:
		return ErrQueueFull
	}
}

// PendingCount reports how many failed events await redelivery.
func (d *Dispatcher) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.failed)
}

// RedeliverPending moves failed events whose backoff has elapsed back into
// the delivery queue. Returns the number of events requeued.
func (d *Dispatcher) RedeliverPending() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	requeued := 0
	remaining := d.failed[:0]
	for _, pending := range d.failed {
		if pending.nextAttempt.After(now) {
			remaining = append(remaining, pending)
			continue
		}

		select {
		case d.queue <- pending:
			requeued++
		default:
			remaining = append(remaining, pending)
		}
	}
	d.failed = remaining

	return requeued
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for {
		select {
		case <-d.stopCh:
			// Drain what is already buffered, then exit.
			for {
				select {
				case pending := <-d.queue:
					d.deliver(pending)
				default:
					return
				}
			}
		case pending := <-d.queue:
			d.deliver(pending)
		}
	}
}

func (d *Dispatcher) deliver(pending pendingEvent) {
	err := d.publisher.Publish(context.Background(), pending.event)
	if err == nil {
		return
	}

	pending.attempts++
	if pending.attempts >= d.maxAttempts {
		d.logger.Error("order event dropped after max delivery attempts",
			"kind", pending.event.Kind,
			"order_id", pending.event.OrderID,
			"attempts", pending.attempts,
			"error", err,
		)
		return
	}

	backoff := time.Duration(math.Pow(2, float64(pending.attempts))) * d.retryBase
	pending.nextAttempt = time.Now().Add(backoff)

	d.logger.Warn("order event delivery failed, scheduled for redelivery",
		"kind", pending.event.Kind,
		"order_id", pending.event.OrderID,
		"attempts", pending.attempts,
		"next_attempt", pending.nextAttempt,
		"error", err,
	)

	d.mu.Lock()
	d.failed = append(d.failed, pending)
	d.mu.Unlock()
}

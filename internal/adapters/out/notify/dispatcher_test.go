package notify_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ordercore/internal/adapters/out/notify"
	"ordercore/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPublisher counts deliveries and can be told to fail the first N.
type recordingPublisher struct {
	mu        sync.Mutex
	delivered []ports.OrderEvent
	failFirst int
	calls     int
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.calls <= p.failFirst {
		return errors.New("broker unavailable")
	}
	p.delivered = append(p.delivered, event)
	return nil
}

func (p *recordingPublisher) deliveredCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.delivered)
}

func testEvent(kind string) ports.OrderEvent {
	return ports.OrderEvent{
		Kind:       kind,
		OrderID:    "9f4f1a6a-0f0e-4e7c-b8d1-2f4f1a6a0f0e",
		NewStatus:  "PENDING",
		OccurredAt: time.Now().UTC(),
	}
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	publisher := &recordingPublisher{}
	dispatcher := notify.NewDispatcher(publisher, slog.Default(), 8, 3, time.Millisecond)
	dispatcher.Start()
	defer dispatcher.Stop()

	require.NoError(t, dispatcher.Publish(t.Context(), testEvent(ports.EventOrderCreated)))
	require.NoError(t, dispatcher.Publish(t.Context(), testEvent(ports.EventOrderCancelled)))

	assert.Eventually(t, func() bool {
		return publisher.deliveredCount() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestDispatcher_QueueFull(t *testing.T) {
	publisher := &recordingPublisher{}
	dispatcher := notify.NewDispatcher(publisher, slog.Default(), 1, 3, time.Millisecond)
	// Worker not started, so the buffer fills up.

	require.NoError(t, dispatcher.Publish(t.Context(), testEvent(ports.EventOrderCreated)))
	err := dispatcher.Publish(t.Context(), testEvent(ports.EventOrderCreated))
	require.Error(t, err)
	assert.ErrorIs(t, err, notify.ErrQueueFull)
}

func TestDispatcher_FailedDeliveryIsParked(t *testing.T) {
	publisher := &recordingPublisher{failFirst: 1}
	dispatcher := notify.NewDispatcher(publisher, slog.Default(), 8, 3, time.Millisecond)
	dispatcher.Start()
	defer dispatcher.Stop()

	require.NoError(t, dispatcher.Publish(t.Context(), testEvent(ports.EventOrderCreated)))

	assert.Eventually(t, func() bool {
		return dispatcher.PendingCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, publisher.deliveredCount())
}

func TestDispatcher_RedeliverPending(t *testing.T) {
	publisher := &recordingPublisher{failFirst: 1}
	dispatcher := notify.NewDispatcher(publisher, slog.Default(), 8, 3, time.Millisecond)
	dispatcher.Start()
	defer dispatcher.Stop()

	require.NoError(t, dispatcher.Publish(t.Context(), testEvent(ports.EventOrderRefunded)))

	require.Eventually(t, func() bool {
		return dispatcher.PendingCount() == 1
	}, time.Second, 5*time.Millisecond)

	// Wait out the backoff, then sweep.
	assert.Eventually(t, func() bool {
		dispatcher.RedeliverPending()
		return publisher.deliveredCount() == 1
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, dispatcher.PendingCount())
}

func TestDispatcher_DropsAfterMaxAttempts(t *testing.T) {
	publisher := &recordingPublisher{failFirst: 100}
	dispatcher := notify.NewDispatcher(publisher, slog.Default(), 8, 2, time.Millisecond)
	dispatcher.Start()
	defer dispatcher.Stop()

	require.NoError(t, dispatcher.Publish(t.Context(), testEvent(ports.EventOrderCreated)))

	require.Eventually(t, func() bool {
		return dispatcher.PendingCount() == 1
	}, time.Second, 5*time.Millisecond)

	// Second attempt hits maxAttempts and the event is dropped.
	assert.Eventually(t, func() bool {
		dispatcher.RedeliverPending()
		return dispatcher.PendingCount() == 0
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, publisher.deliveredCount())
}

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	publisher := &recordingPublisher{}
	dispatcher := notify.NewDispatcher(publisher, slog.Default(), 8, 3, time.Millisecond)

	require.NoError(t, dispatcher.Publish(t.Context(), testEvent(ports.EventOrderCreated)))
	dispatcher.Start()
	dispatcher.Stop()

	assert.Equal(t, 1, publisher.deliveredCount())
}

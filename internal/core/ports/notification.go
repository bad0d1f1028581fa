package ports

import (
	"context"
	"time"

	"ordercore/internal/core/domain/model/order"
)

// Notification event kinds emitted by order operations.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusUpdated = "order.status_updated"
	EventOrderCancelled     = "order.cancelled"
	EventOrderRefunded      = "order.refunded"
)

// OrderEvent is the message handed to the notification channel on a lifecycle
// event. It carries everything a downstream notification service needs to
// render a message without calling back into the order service.
type OrderEvent struct {
	Kind        string    `json:"kind"`
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	MerchantID  string    `json:"merchant_id"`
	TotalAmount string    `json:"total_amount"`
	OldStatus   string    `json:"old_status,omitempty"`
	NewStatus   string    `json:"new_status,omitempty"`
	Tracking    string    `json:"tracking_number,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewOrderEvent builds an OrderEvent of the given kind from an order snapshot.
func NewOrderEvent(kind string, o *order.Order) OrderEvent {
	return OrderEvent{
		Kind:        kind,
		OrderID:     o.ID().String(),
		CustomerID:  o.CustomerID().String(),
		MerchantID:  o.MerchantID().String(),
		TotalAmount: o.TotalAmount().StringFixed(2),
		NewStatus:   o.Status().String(),
		OccurredAt:  time.Now().UTC(),
	}
}

// NewStatusChangeEvent builds an EventOrderStatusUpdated event carrying the
// old and new status pair.
func NewStatusChangeEvent(o *order.Order, oldStatus, newStatus order.Status) OrderEvent {
	event := NewOrderEvent(EventOrderStatusUpdated, o)
	event.OldStatus = oldStatus.String()
	event.NewStatus = newStatus.String()
	return event
}

// NotificationPublisher is the fire-and-forget notification boundary. Publish
// hands the event to an asynchronous delivery channel and returns quickly.
// A returned error means the event could not be enqueued; callers log it and
// never fail the order operation because of it.
type NotificationPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

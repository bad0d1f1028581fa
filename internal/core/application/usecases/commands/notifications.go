package commands

import (
	"context"
	"log/slog"

	"ordercore/internal/core/ports"
)

// publishEvent hands a lifecycle event to the notification channel.
// Notification delivery is best-effort: a publish failure is logged and never
// propagated, so it cannot fail or roll back the order mutation.
func publishEvent(ctx context.Context, publisher ports.NotificationPublisher, event ports.OrderEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "order event not enqueued",
			"kind", event.Kind,
			"order_id", event.OrderID,
			"error", err,
		)
	}
}

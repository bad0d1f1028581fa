package commands

import (
	"context"

	"ordercore/internal/core/ports"
)

// RequestRefundCommandHandler refunds a delivered order in full.
// The refund call and the status write are sequenced inside one handler: the
// payment boundary is invoked first, and only on its success is the order
// marked REFUNDED and persisted within the same transaction. A provider
// failure therefore leaves the order's status untouched.
type RequestRefundCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
	refunds    ports.RefundProvider
}

// NewRequestRefundCommandHandler creates a handler for refund requests.
func NewRequestRefundCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
	refunds ports.RefundProvider,
) RequestRefundCommandHandler {
	return RequestRefundCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		refunds:    refunds,
	}
}

// Handle processes the refund command.
// Fails with a ValidationError when the order is not DELIVERED and with a
// DependencyFailureError when the payment boundary rejects the refund.
func (h *RequestRefundCommandHandler) Handle(
	ctx context.Context,
	cmd RequestRefundCommand,
) (ports.RefundRecord, error) {
	if err := cmd.Validate(); err != nil {
		return ports.RefundRecord{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.RefundRecord{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return ports.RefundRecord{}, err
	}

	if err = aggregate.Status().ValidateRefundable(); err != nil {
		return ports.RefundRecord{}, err
	}

	record, err := h.refunds.Refund(ctx, aggregate, aggregate.TotalAmount(), cmd.Reason())
	if err != nil {
		return ports.RefundRecord{}, err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.MarkRefunded(); err != nil {
		return ports.RefundRecord{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ports.RefundRecord{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.RefundRecord{}, err
	}

	event := ports.NewOrderEvent(ports.EventOrderRefunded, aggregate)
	event.OldStatus = oldStatus.String()
	publishEvent(ctx, h.publisher, event)

	return record, nil
}

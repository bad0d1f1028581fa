package commands

import (
	"context"

	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order that has not shipped yet.
// Cancellation is a specialization of the generic status transition with its
// own eligibility rule on top of plain reachability.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Fails with a ValidationError when the order is past the cancellable
// statuses; the status is left unchanged on any failure.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return nil, err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := ports.NewOrderEvent(ports.EventOrderCancelled, aggregate)
	event.OldStatus = oldStatus.String()
	publishEvent(ctx, h.publisher, event)

	return aggregate, nil
}

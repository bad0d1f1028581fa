package commands

import (
	"context"

	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle.
// Loads the order inside a transaction, validates the transition against the
// freshly loaded status, and persists with an optimistic version check so a
// concurrent mutation cannot apply a transition computed against stale state.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
// Returns an ObjectNotFoundError when the order does not exist (or belongs to
// a different owner) and an InvalidTransitionError when the requested status
// is not reachable from the current one. The status is never partially applied.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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
	if err = aggregate.TransitionTo(cmd.NextStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	event := ports.NewStatusChangeEvent(aggregate, oldStatus, aggregate.Status())
	if aggregate.Status() == order.StatusShipped {
		event.Tracking = order.NewShipment(aggregate.ID()).TrackingNumber
	}
	publishEvent(ctx, h.publisher, event)

	return aggregate, nil
}

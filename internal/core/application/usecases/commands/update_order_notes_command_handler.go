package commands

import (
	"context"

	"ordercore/internal/core/domain/model/order"
)

// UpdateOrderNotesCommandHandler replaces an order's notes.
// Notes are not part of the lifecycle contract, so no notification is sent.
type UpdateOrderNotesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderNotesCommandHandler creates a handler for notes updates.
func NewUpdateOrderNotesCommandHandler(uowFactory OrderUoWFactory) UpdateOrderNotesCommandHandler {
	return UpdateOrderNotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the notes update command.
// Fails with an ObjectNotFoundError when the order does not exist.
func (h *UpdateOrderNotesCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderNotesCommand,
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

	aggregate.UpdateNotes(cmd.Notes())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"errors"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. The transition itself is validated against the freshly
// loaded order inside the handler's transaction, not here.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	nextStatus order.Status
	ownerID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// ownerID optionally scopes the operation to the owning customer; pass nil
// for unscoped access.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	nextStatus order.Status,
	ownerID *kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNextStatus(nextStatus),
		statusCommand.setOwnerID(ownerID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NextStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NextStatus() order.Status {
	return c.nextStatus
}

// OwnerID returns the optional owning customer filter.
func (c UpdateOrderStatusCommand) OwnerID() *kernel.UUID {
	return c.ownerID
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setNextStatus(nextStatus order.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}

func (c *UpdateOrderStatusCommand) setOwnerID(ownerID *kernel.UUID) error {
	if ownerID == nil {
		return nil
	}

	if err := ownerID.Validate(); err != nil {
		return err
	}

	owner := *ownerID
	c.ownerID = &owner
	return nil
}

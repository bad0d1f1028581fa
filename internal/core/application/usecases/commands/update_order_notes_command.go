package commands

import (
	"errors"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/pkg/guard"
)

var ErrUpdateOrderNotesCommandIsNotConstructed = errors.New(
	"UpdateOrderNotesCommand must be created via NewUpdateOrderNotesCommand constructor",
)

// UpdateOrderNotesCommand represents a request to replace an order's free-text
// notes. No business validation applies beyond the order's existence.
type UpdateOrderNotesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	notes   string
	ownerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderNotesCommand creates a command to update an order's notes.
// An empty notes string clears the field.
func NewUpdateOrderNotesCommand(
	orderID kernel.UUID,
	notes string,
	ownerID *kernel.UUID,
) (UpdateOrderNotesCommand, error) {
	notesCommand := UpdateOrderNotesCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		notesCommand.setOrderID(orderID),
		notesCommand.setOwnerID(ownerID),
	); err != nil {
		return UpdateOrderNotesCommand{}, err
	}

	return notesCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderNotesCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderNotesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the replacement notes text.
func (c UpdateOrderNotesCommand) Notes() string {
	return c.notes
}

// OwnerID returns the optional owning customer filter.
func (c UpdateOrderNotesCommand) OwnerID() *kernel.UUID {
	return c.ownerID
}

func (c *UpdateOrderNotesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderNotesCommand) setOwnerID(ownerID *kernel.UUID) error {
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

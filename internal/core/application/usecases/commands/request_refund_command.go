package commands

import (
	"errors"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/pkg/guard"
)

var ErrRequestRefundCommandIsNotConstructed = errors.New(
	"RequestRefundCommand must be created via NewRequestRefundCommand constructor",
)

// RequestRefundCommand represents a request to refund a delivered order in
// full. Partial refunds are not supported; the refund amount is always the
// order total.
type RequestRefundCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string
	ownerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestRefundCommand creates a command to refund an order. reason is
// free text forwarded to the payment boundary; ownerID optionally scopes the
// operation to the owning customer.
func NewRequestRefundCommand(
	orderID kernel.UUID,
	reason string,
	ownerID *kernel.UUID,
) (RequestRefundCommand, error) {
	refundCommand := RequestRefundCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		refundCommand.setOrderID(orderID),
		refundCommand.setOwnerID(ownerID),
	); err != nil {
		return RequestRefundCommand{}, err
	}

	return refundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRefundCommand) Validate() error {
	return c.guard.Validate(ErrRequestRefundCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to refund.
func (c RequestRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the refund reason.
func (c RequestRefundCommand) Reason() string {
	return c.reason
}

// OwnerID returns the optional owning customer filter.
func (c RequestRefundCommand) OwnerID() *kernel.UUID {
	return c.ownerID
}

func (c *RequestRefundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestRefundCommand) setOwnerID(ownerID *kernel.UUID) error {
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

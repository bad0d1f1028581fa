package queries

import (
	"errors"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items by identifier,
// optionally scoped to the owning customer.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order. ownerID optionally scopes
// the lookup to the owning customer; pass nil for unscoped access.
func NewGetOrderQuery(orderID kernel.UUID, ownerID *kernel.UUID) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderQuery.setOrderID(orderID),
		orderQuery.setOwnerID(ownerID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OwnerID returns the optional owning customer filter.
func (q GetOrderQuery) OwnerID() *kernel.UUID {
	return q.ownerID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setOwnerID(ownerID *kernel.UUID) error {
	if ownerID == nil {
		return nil
	}

	if err := ownerID.Validate(); err != nil {
		return err
	}

	owner := *ownerID
	q.ownerID = &owner
	return nil
}

package ports

import (
	"context"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All operations are atomic with respect to a single order: an order and its
// items are written together or not at all.
type OrderRepository interface {
	// Add persists a new order aggregate with all its items.
	// The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order (status, notes, payment
	// reference). Items are immutable and never updated. Implementations must
	// perform an optimistic version check and return a DependencyFailureError
	// on conflict, so a lost-update race cannot apply a transition computed
	// against stale state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by identifier. When customerID is
	// non-nil the lookup is scoped to that owner, and an order belonging to a
	// different customer is reported as not found.
	Get(ctx context.Context, id kernel.UUID, customerID *kernel.UUID) (*order.Order, error)
}

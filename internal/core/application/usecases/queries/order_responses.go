// Package queries contains read-only operations that bypass the domain model.
// Query handlers read directly from the database and return flat response
// structures, never loaded aggregates.
package queries

import (
	"time"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"
)

// OrderItemResponse represents one line item in a query result.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice order.Money
	Discount  order.Money
	Subtotal  order.Money
}

// AddressResponse represents a shipping address in a query result.
type AddressResponse struct {
	Street    string
	City      string
	State     string
	Zip       string
	Country   string
	Apartment string
}

// OrderResponse represents a full order in a query result.
type OrderResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	MerchantID   kernel.UUID
	Status       string
	TotalAmount  order.Money
	TaxAmount    order.Money
	ShippingCost order.Money
	Address      AddressResponse
	PaymentID    *kernel.UUID
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []OrderItemResponse
}

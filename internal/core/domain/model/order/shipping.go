package order

import (
	"strings"

	"ordercore/internal/core/domain/model/kernel"
)

const (
	standardCarrier       = "Standard Shipping"
	estimatedDeliveryDays = 5
)

// Shipment describes how a shipped order travels to the customer.
// The tracking number is derived from the order identifier.
type Shipment struct {
	TrackingNumber string
	Carrier        string
	EstimatedDays  int
}

// NewShipment builds the shipment descriptor for an order entering the
// SHIPPED status.
func NewShipment(orderID kernel.UUID) Shipment {
	return Shipment{
		TrackingNumber: "TRACK-" + strings.ToUpper(orderID.String()[:8]),
		Carrier:        standardCarrier,
		EstimatedDays:  estimatedDeliveryDays,
	}
}

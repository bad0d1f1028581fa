package ports

import (
	"context"

	"ordercore/internal/core/domain/model/order"
)

// RefundRecord describes the outcome of a refund request against the payment
// boundary. RefundID is the payment-side reference returned to the caller.
type RefundRecord struct {
	RefundID string      `json:"refund_id"`
	OrderID  string      `json:"order_id"`
	Amount   order.Money `json:"amount"`
	Reason   string      `json:"reason,omitempty"`
	Status   string      `json:"status"`
}

// RefundProvider is the payment boundary used when refunding a delivered
// order. Refund is called before the order is marked refunded; when it
// returns an error the order keeps its current status. Implementations
// return a DependencyFailureError on transport or provider failure.
type RefundProvider interface {
	Refund(ctx context.Context, aggregate *order.Order, amount order.Money, reason string) (RefundRecord, error)
}

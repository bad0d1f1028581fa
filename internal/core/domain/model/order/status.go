package order

import (
	"fmt"

	"ordercore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed transition table so orders always
// follow the business workflow:
//
//	PENDING ────> PROCESSING ────> SHIPPED ────> DELIVERED ────> REFUNDED
//	   │               │
//	   └───────────────┴─────> CANCELLED
//
// CANCELLED and REFUNDED are terminal. Any transition not listed in the table
// is rejected with an InvalidTransitionError.
type Status string

const (
	// StatusPending is the initial status of every newly created order.
	StatusPending Status = "PENDING"

	// StatusProcessing indicates the merchant has accepted the order.
	StatusProcessing Status = "PROCESSING"

	// StatusShipped indicates the order has left the warehouse.
	StatusShipped Status = "SHIPPED"

	// StatusDelivered indicates the order reached the customer. Delivered
	// orders are the only ones eligible for refunds.
	StatusDelivered Status = "DELIVERED"

	// StatusCancelled is a terminal status reachable before shipment.
	StatusCancelled Status = "CANCELLED"

	// StatusRefunded is a terminal status reachable only from DELIVERED after
	// the payment provider confirmed the refund.
	StatusRefunded Status = "REFUNDED"
)

// statusTransitions is the authoritative transition table: for each current
// status, the set of statuses an order may move to next.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusProcessing, StatusCancelled},
		StatusProcessing: {StatusShipped, StatusCancelled},
		StatusShipped:    {StatusDelivered},
		StatusDelivered:  {StatusRefunded},
		StatusCancelled:  {},
		StatusRefunded:   {},
	}
}

// ParseStatus converts a raw string into a Status, validating it against the
// known set. Used when reconstructing orders from persistence or parsing
// caller input.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether the status is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValidationErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid order status", string(s)),
		)
	}
	return nil
}

// String returns the canonical uppercase name of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return len(statusTransitions()[s]) == 0
}

// CanTransitionTo reports whether the transition table allows moving from s to
// next. It performs no side effects.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns the next status if the transition table allows it, or
// an InvalidTransitionError otherwise. The receiver is never modified; callers
// apply the returned status only after the whole operation validated.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(next) {
		return "", errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}

// ValidateCancellable reports whether an order in this status may be cancelled.
// Only orders that have not shipped yet (PENDING, PROCESSING) are cancellable.
func (s Status) ValidateCancellable() error {
	if s != StatusPending && s != StatusProcessing {
		return errs.NewValidationError(
			fmt.Sprintf("order with status %s cannot be cancelled", s.String()),
		)
	}
	return nil
}

// ValidateRefundable reports whether an order in this status may be refunded.
// Only DELIVERED orders are refundable.
func (s Status) ValidateRefundable() error {
	if s != StatusDelivered {
		return errs.NewValidationError(
			fmt.Sprintf("order with status %s cannot be refunded", s.String()),
		)
	}
	return nil
}

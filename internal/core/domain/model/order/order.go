package order

import (
	"errors"
	"time"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/pkg/errs"
	"ordercore/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the order-management core. It owns its items,
// shipping address, and the authoritative status field.
//
// Invariants:
//   - an order has at least one item for its entire lifetime; items are
//     immutable after creation
//   - total amount == subtotal + shipping cost + tax amount, computed once at
//     creation and stored, never silently re-derived
//   - status only moves along the transition table; no partial transition is
//     observable
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	merchantID kernel.UUID

	status Status

	totalAmount  Money
	taxAmount    Money
	shippingCost Money

	items   []Item
	address Address

	paymentID *kernel.UUID
	notes     string

	createdAt time.Time
	updatedAt time.Time

	// version supports the persistence layer's optimistic concurrency check.
	version int64

	guard guard.ConstructorGuard
}

// NewOrder creates a new PENDING order, validating its parts and computing the
// priced totals from the items and cfg. The caller is responsible for item
// construction (NewItem), which enforces the per-item rules.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	items []Item,
	address Address,
	notes string,
	cfg PricingConfig,
) (*Order, error) {
	order := &Order{
		status: StatusPending,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setMerchantID(merchantID),
		order.setAddress(address),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	totals := ComputeTotals(items, cfg)
	order.totalAmount = totals.Total
	order.taxAmount = totals.Tax
	order.shippingCost = totals.Shipping

	now := time.Now().UTC()
	order.createdAt = now
	order.updatedAt = now
	order.version = 1

	return order, nil
}

// RestoreOrder rehydrates an order from persistence. Stored totals are taken
// as-is and not recomputed; the pricing configuration in force at creation
// time is authoritative.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	merchantID kernel.UUID,
	status Status,
	totalAmount Money,
	taxAmount Money,
	shippingCost Money,
	items []Item,
	address Address,
	paymentID *kernel.UUID,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Order, error) {
	order := &Order{
		totalAmount:  totalAmount,
		taxAmount:    taxAmount,
		shippingCost: shippingCost,
		paymentID:    paymentID,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		version:      version,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setMerchantID(merchantID),
		order.setStatus(status),
		order.setAddress(address),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// MerchantID returns the identifier of the merchant fulfilling the order.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the stored order total.
func (o *Order) TotalAmount() Money {
	return o.totalAmount
}

// TaxAmount returns the stored tax component of the total.
func (o *Order) TaxAmount() Money {
	return o.taxAmount
}

// ShippingCost returns the stored shipping component of the total.
func (o *Order) ShippingCost() Money {
	return o.shippingCost
}

// Subtotal returns the item subtotal implied by the stored components.
func (o *Order) Subtotal() Money {
	return o.totalAmount.Sub(o.shippingCost).Sub(o.taxAmount)
}

// Items returns the order's item lines in stable creation order.
// The returned slice is a copy; items themselves are immutable.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Address returns the shipping address.
func (o *Order) Address() Address {
	return o.address
}

// PaymentID returns the optional payment reference; nil when unset.
func (o *Order) PaymentID() *kernel.UUID {
	return o.paymentID
}

// Notes returns the free-text notes; empty when unset.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency version of the aggregate.
func (o *Order) Version() int64 {
	return o.version
}

// TransitionTo moves the order to the next status if the transition table
// allows it. On failure the status is left unchanged.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves the order to CANCELLED. Beyond table reachability it requires
// the order to be cancellable (PENDING or PROCESSING); this is the
// specialization point for future cancellation rules.
func (o *Order) Cancel() error {
	if err := o.status.ValidateCancellable(); err != nil {
		return err
	}
	return o.TransitionTo(StatusCancelled)
}

// MarkRefunded moves the order to REFUNDED. It must only be called after the
// refund collaborator confirmed the refund; eligibility is re-checked here so
// a stale caller cannot refund a non-delivered order.
func (o *Order) MarkRefunded() error {
	if err := o.status.ValidateRefundable(); err != nil {
		return err
	}
	return o.TransitionTo(StatusRefunded)
}

// UpdateNotes replaces the free-text notes. No business validation applies.
func (o *Order) UpdateNotes(notes string) {
	o.notes = notes
	o.touch()
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	o.merchantID = merchantID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValidationError("order must have at least one item")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

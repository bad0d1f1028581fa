package order

import (
	"errors"
	"fmt"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/pkg/errs"
	"ordercore/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is one product line within an order. Items are owned exclusively by
// their order, created together with it, and never mutated afterwards.
//
// Invariants:
//   - quantity > 0 and, at creation time, quantity <= the configured maximum
//   - unit price > 0
//   - 0 <= discount < unit price * quantity
type Item struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice Money
	discount  Money

	guard guard.ConstructorGuard
}

// NewItem creates a validated order item. maxQuantity is the configured
// per-item quantity cap (PricingConfig.MaxItemQuantity).
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice Money,
	discount Money,
	maxQuantity int,
) (Item, error) {
	item, err := RestoreItem(id, productID, quantity, unitPrice, discount)
	if err != nil {
		return Item{}, err
	}

	if maxQuantity > 0 && quantity > maxQuantity {
		return Item{}, errs.NewValidationError(fmt.Sprintf(
			"item quantity cannot exceed %d for product %s", maxQuantity, productID.String(),
		))
	}

	return item, nil
}

// RestoreItem rehydrates an item from persistence. It enforces the invariants
// that hold for the item's whole lifetime but not the creation-time quantity
// cap, so stored orders keep loading after the cap is lowered.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice Money,
	discount Money,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setDiscount(discount, unitPrice, quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the purchased product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units purchased.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() Money {
	return i.unitPrice
}

// Discount returns the absolute discount applied to this line.
func (i Item) Discount() Money {
	return i.discount
}

// Subtotal returns unit price * quantity - discount.
func (i Item) Subtotal() Money {
	return i.unitPrice.Mul(decimalFromInt(i.quantity)).Sub(i.discount)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValidationError(fmt.Sprintf(
			"item quantity must be greater than 0 for product %s", i.productID.String(),
		))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValidationError(fmt.Sprintf(
			"item unit price must be greater than 0 for product %s", i.productID.String(),
		))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setDiscount(discount, unitPrice Money, quantity int) error {
	if discount.IsNegative() {
		return errs.NewValidationError(fmt.Sprintf(
			"item discount cannot be negative for product %s", i.productID.String(),
		))
	}
	lineTotal := unitPrice.Mul(decimalFromInt(quantity))
	if discount.GreaterThanOrEqual(lineTotal) && lineTotal.IsPositive() {
		return errs.NewValidationError(fmt.Sprintf(
			"item discount cannot exceed subtotal for product %s", i.productID.String(),
		))
	}
	i.discount = discount
	return nil
}

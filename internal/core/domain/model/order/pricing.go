package order

import "github.com/shopspring/decimal"

// PricingConfig carries the pricing and item-policy settings consumed by the
// order domain. It is constructed once from application configuration and
// passed in explicitly; the domain never reads ambient state.
type PricingConfig struct {
	// TaxRate is the tax fraction applied to the item subtotal only;
	// shipping is not taxed.
	TaxRate decimal.Decimal

	// ShippingBaseRate is charged when the subtotal is below
	// ShippingFreeThreshold and shipping calculation is enabled.
	ShippingBaseRate Money

	// ShippingFreeThreshold is the subtotal at or above which shipping is free.
	ShippingFreeThreshold Money

	// ShippingEnabled disables shipping charges entirely when false.
	ShippingEnabled bool

	// MaxItemQuantity caps the quantity of a single order item at creation.
	// Zero means no cap.
	MaxItemQuantity int
}

// DefaultPricingConfig returns the standard platform pricing: 8% tax, $5.99
// base shipping with free shipping from $50.00, and a per-item cap of 1000.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TaxRate:               decimal.RequireFromString("0.08"),
		ShippingBaseRate:      MustMoneyFromString("5.99"),
		ShippingFreeThreshold: MustMoneyFromString("50.00"),
		ShippingEnabled:       true,
		MaxItemQuantity:       1000,
	}
}

// Totals is the priced breakdown of an order. Total is always exactly
// Subtotal + Shipping + Tax.
type Totals struct {
	Subtotal Money
	Shipping Money
	Tax      Money
	Total    Money
}

// ComputeTotals derives the priced breakdown of an item set. It is a pure
// function: no error conditions, no side effects; callers validate items
// beforehand.
//
//	subtotal = Σ (unit price * quantity - discount)
//	shipping = 0 if disabled or subtotal >= free threshold, else base rate
//	tax      = subtotal * tax rate  (shipping untaxed)
//	total    = subtotal + shipping + tax
//
// Each component is rounded to the currency scale before the total is summed,
// so the Total identity holds exactly with no rounding drift.
func ComputeTotals(items []Item, cfg PricingConfig) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	subtotal = roundCurrency(subtotal)

	shipping := calculateShipping(subtotal, cfg)
	tax := roundCurrency(subtotal.Mul(cfg.TaxRate))
	total := subtotal.Add(shipping).Add(tax)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    total,
	}
}

// calculateShipping returns the shipping charge for a given subtotal.
func calculateShipping(subtotal Money, cfg PricingConfig) Money {
	if !cfg.ShippingEnabled {
		return ZeroMoney()
	}
	if subtotal.GreaterThanOrEqual(cfg.ShippingFreeThreshold) {
		return ZeroMoney()
	}
	return roundCurrency(cfg.ShippingBaseRate)
}

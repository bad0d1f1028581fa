// Package order contains the order aggregate and its supporting value objects.
//
// The aggregate root is Order, which owns an immutable set of Items, a shipping
// Address, and the authoritative Status. Status implements the lifecycle state
// machine; every mutation of an order is validated against it before any state
// changes, so no partial transition is ever observable.
//
// Pricing is a pure computation: ComputeTotals derives subtotal, shipping, tax,
// and total from the items and a PricingConfig using exact decimal arithmetic.
// Totals are computed once at creation and stored, never re-derived on read.
package order

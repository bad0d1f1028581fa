// Package kernel holds the shared value objects of the domain model.
//
// It currently contains UUID, the identifier type used by orders, order items,
// customers, merchants, and payments. Value objects in this package are
// immutable, validated at construction, and safe for concurrent use.
package kernel

package queries

import (
	"errors"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a page of orders matching the given filters.
// Filters are AND-combined; a nil filter matches everything.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID *kernel.UUID
	merchantID *kernel.UUID
	status     *order.Status
	page       int
	pageSize   int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paginated order listing query.
// Page defaults to 1 when out of range; pageSize defaults to 20 and is capped
// at 100.
func NewListOrdersQuery(
	customerID *kernel.UUID,
	merchantID *kernel.UUID,
	status *order.Status,
	page int,
	pageSize int,
) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	listQuery.page = page
	listQuery.pageSize = pageSize

	if err := errors.Join(
		listQuery.setCustomerID(customerID),
		listQuery.setMerchantID(merchantID),
		listQuery.setStatus(status),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the optional customer filter.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// MerchantID returns the optional merchant filter.
func (q ListOrdersQuery) MerchantID() *kernel.UUID {
	return q.merchantID
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q *ListOrdersQuery) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}

	if err := customerID.Validate(); err != nil {
		return err
	}

	id := *customerID
	q.customerID = &id
	return nil
}

func (q *ListOrdersQuery) setMerchantID(merchantID *kernel.UUID) error {
	if merchantID == nil {
		return nil
	}

	if err := merchantID.Validate(); err != nil {
		return err
	}

	id := *merchantID
	q.merchantID = &id
	return nil
}

func (q *ListOrdersQuery) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}

	if err := status.Validate(); err != nil {
		return err
	}

	s := *status
	q.status = &s
	return nil
}

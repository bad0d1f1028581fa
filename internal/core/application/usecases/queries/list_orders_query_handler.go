package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryResponse is one page of an order listing.
type ListOrdersQueryResponse struct {
	Orders     []OrderResponse
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ListOrdersQueryHandler reads pages of orders matching the query filters.
// Results are ordered by creation time descending, newest first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Returns the matching page plus the total count
// of rows matching the filters regardless of pagination.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := ` WHERE 1=1`
	args := []any{}
	if customerID := query.CustomerID(); customerID != nil {
		where += ` AND customer_id = ?`
		args = append(args, customerID.Bytes())
	}
	if merchantID := query.MerchantID(); merchantID != nil {
		where += ` AND merchant_id = ?`
		args = append(args, merchantID.Bytes())
	}
	if status := query.Status(); status != nil {
		where += ` AND status = ?`
		args = append(args, status.String())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders`+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	pageArgs := append(args, query.PageSize(), offset)
	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders`+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		pageArgs...,
	).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.PageSize())
	rawIDs := make([]uuid.UUID, 0, query.PageSize())
	for rows.Next() {
		response, rawID, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return ListOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, response)
		rawIDs = append(rawIDs, rawID)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, rawIDs)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	for i := range orders {
		orders[i].Items = items[rawIDs[i]]
	}

	totalPages := int((total + int64(query.PageSize()) - 1) / int64(query.PageSize()))

	return ListOrdersQueryResponse{
		Orders:     orders,
		Total:      total,
		Page:       query.Page(),
		PageSize:   query.PageSize(),
		TotalPages: totalPages,
	}, nil
}

package queries

import (
	"context"

	"ordercore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order with its items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// matches the identifier, including when the owner filter excludes it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	sql := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	args := []any{query.OrderID().Bytes()}
	if owner := query.OwnerID(); owner != nil {
		sql += ` AND customer_id = ?`
		args = append(args, owner.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID().String())
	}

	response, rawID, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, []uuid.UUID{rawID})
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = items[rawID]

	return response, nil
}

package queries

import (
	"context"

	"ordercore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// loadOrderItems fetches the line items for the given orders in one query and
// groups them by order identifier.
func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]OrderItemResponse, error) {
	grouped := make(map[uuid.UUID][]OrderItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			quantity,
			unit_price,
			discount
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			orderID   uuid.UUID
			productID uuid.UUID
			quantity  int
			unitPrice decimal.Decimal
			discount  decimal.Decimal
		)

		if err = rows.Scan(&id, &orderID, &productID, &quantity, &unitPrice, &discount); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		grouped[orderID] = append(grouped[orderID], OrderItemResponse{
			ID:        itemID,
			ProductID: itemProductID,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			Discount:  discount,
			Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Sub(discount),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return grouped, nil
}

// orderColumns is the shared SELECT column list for order rows.
// scanOrderRow's destinations must stay in the same order.
const orderColumns = `
	id,
	customer_id,
	merchant_id,
	status,
	total_amount,
	tax_amount,
	shipping_cost,
	address_street,
	address_city,
	address_state,
	address_zip,
	address_country,
	address_apartment,
	payment_id,
	notes,
	created_at,
	updated_at`

func scanOrderRow(rows interface{ Scan(dest ...any) error }) (OrderResponse, uuid.UUID, error) {
	var (
		id           uuid.UUID
		customerID   uuid.UUID
		merchantID   uuid.UUID
		status       string
		totalAmount  decimal.Decimal
		taxAmount    decimal.Decimal
		shippingCost decimal.Decimal
		address      AddressResponse
		paymentID    uuid.NullUUID
		response     OrderResponse
	)

	err := rows.Scan(
		&id,
		&customerID,
		&merchantID,
		&status,
		&totalAmount,
		&taxAmount,
		&shippingCost,
		&address.Street,
		&address.City,
		&address.State,
		&address.Zip,
		&address.Country,
		&address.Apartment,
		&paymentID,
		&response.Notes,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, uuid.UUID{}, err
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, uuid.UUID{}, err
	}
	response.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, uuid.UUID{}, err
	}
	response.MerchantID, err = kernel.UUIDFromBytes(merchantID[:])
	if err != nil {
		return OrderResponse{}, uuid.UUID{}, err
	}
	if paymentID.Valid {
		payment, idErr := kernel.UUIDFromBytes(paymentID.UUID[:])
		if idErr != nil {
			return OrderResponse{}, uuid.UUID{}, idErr
		}
		response.PaymentID = &payment
	}

	response.Status = status
	response.TotalAmount = totalAmount
	response.TaxAmount = taxAmount
	response.ShippingCost = shippingCost
	response.Address = address

	return response, id, nil
}

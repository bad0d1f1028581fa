// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed for the listing filters: customer, merchant, and status.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;index"`
	MerchantID   uuid.UUID       `gorm:"type:uuid;index"`
	Status       string          `gorm:"type:varchar(16);index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(10,2)"`
	TaxAmount    decimal.Decimal `gorm:"type:numeric(10,2)"`
	ShippingCost decimal.Decimal `gorm:"type:numeric(10,2)"`
	Address      AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	PaymentID    *uuid.UUID      `gorm:"type:uuid"`
	Notes        string
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	// Version backs the optimistic concurrency check in Update.
	Version int64

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Street    string
	City      string
	State     string
	Zip       string
	Country   string
	Apartment string
}

// ItemDTO represents one order line item. Items are written once at order
// creation and never updated afterwards.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Quantity  int
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
	Discount  decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var paymentID *uuid.UUID
	if id := aggregate.PaymentID(); id != nil {
		raw := id.Bytes()
		paymentID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Discount:  item.Discount(),
		})
	}

	address := aggregate.Address()

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		MerchantID:   aggregate.MerchantID().Bytes(),
		Status:       aggregate.Status().String(),
		TotalAmount:  aggregate.TotalAmount(),
		TaxAmount:    aggregate.TaxAmount(),
		ShippingCost: aggregate.ShippingCost(),
		Address: AddressDTO{
			Street:    address.Street(),
			City:      address.City(),
			State:     address.State(),
			Zip:       address.Zip(),
			Country:   address.Country(),
			Apartment: address.Apartment(),
		},
		PaymentID: paymentID,
		Notes:     aggregate.Notes(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
		Items:     items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var paymentID *kernel.UUID
	if dto.PaymentID != nil {
		pID, paymentErr := kernel.UUIDFromBytes((*dto.PaymentID)[:])
		if paymentErr != nil {
			return nil, paymentErr
		}
		paymentID = &pID
	}

	address, err := order.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.Zip,
		dto.Address.Country,
		dto.Address.Apartment,
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		merchantID,
		status,
		dto.TotalAmount,
		dto.TaxAmount,
		dto.ShippingCost,
		items,
		address,
		paymentID,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, productID, dto.Quantity, dto.UnitPrice, dto.Discount)
}

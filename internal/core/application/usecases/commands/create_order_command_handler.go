package commands

import (
	"context"

	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Builds the priced order aggregate from the command inputs and persists it
// together with its items in one transaction, then emits an order.created
// event on the notification channel.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
	pricing    order.PricingConfig
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence; publisher may be
// nil when notifications are disabled.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
	pricing order.PricingConfig,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		pricing:    pricing,
	}
}

// Handle processes the order creation command.
// Validates the items against the pricing configuration, computes totals, and
// creates the order in PENDING status. Uses a transaction so the order and its
// items are persisted atomically or not at all.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	inputs := cmd.Items()
	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewItem(
			kernel.NewUUID(),
			input.ProductID,
			input.Quantity,
			input.UnitPrice,
			input.Discount,
			h.pricing.MaxItemQuantity,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.MerchantID(),
		items,
		cmd.Address(),
		cmd.Notes(),
		h.pricing,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishEvent(ctx, h.publisher, ports.NewOrderEvent(ports.EventOrderCreated, aggregate))

	return aggregate, nil
}

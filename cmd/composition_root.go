package cmd

import (
	"context"
	"strconv"

	"ordercore/internal/adapters/out/notify"
	"ordercore/internal/adapters/out/payment"
	"ordercore/internal/adapters/out/postgres"
	"ordercore/internal/core/application/usecases/commands"
	"ordercore/internal/core/application/usecases/queries"
	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/core/ports"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricing    order.PricingConfig
	dispatcher *notify.Dispatcher
	refunds    ports.RefundProvider
	notify     bool
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	dispatcher *notify.Dispatcher,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    pricingFromConfig(configs),
		dispatcher: dispatcher,
		refunds:    payment.NewRefundClient(configs.PaymentServiceURL, 0),
		notify:     configs.NotificationsEnabled != "false",
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher(), c.pricing)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher())
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestRefundCommandHandler(f, c.publisher(), c.refunds)
}

func (c *CompositionRoot) CreateUpdateOrderNotesCommandHandler() commands.UpdateOrderNotesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderNotesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// Ping reports whether the database behind the composition root is reachable.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *CompositionRoot) publisher() ports.NotificationPublisher {
	if !c.notify {
		return nil
	}
	return c.dispatcher
}

// pricingFromConfig overlays environment-provided pricing settings on the
// defaults. Unparseable values keep the default.
func pricingFromConfig(configs Config) order.PricingConfig {
	pricing := order.DefaultPricingConfig()

	if rate, err := decimal.NewFromString(configs.TaxRate); err == nil {
		pricing.TaxRate = rate
	}
	if base, err := decimal.NewFromString(configs.ShippingBaseRate); err == nil {
		pricing.ShippingBaseRate = base
	}
	if threshold, err := decimal.NewFromString(configs.ShippingFreeThreshold); err == nil {
		pricing.ShippingFreeThreshold = threshold
	}
	if enabled, err := strconv.ParseBool(configs.ShippingEnabled); err == nil {
		pricing.ShippingEnabled = enabled
	}
	if maxQuantity, err := strconv.Atoi(configs.MaxItemQuantity); err == nil && maxQuantity > 0 {
		pricing.MaxItemQuantity = maxQuantity
	}

	return pricing
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

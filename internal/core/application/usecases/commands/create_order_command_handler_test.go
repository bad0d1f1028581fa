package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordercore/internal/core/application/usecases/commands"
	"ordercore/internal/core/domain/model/kernel"
	"ordercore/internal/core/domain/model/order"
	"ordercore/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID, ownerID *kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id, ownerID)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockRefundProvider struct{ mock.Mock }

func (m *MockRefundProvider) Refund(
	ctx context.Context,
	o *order.Order,
	amount order.Money,
	reason string,
) (ports.RefundRecord, error) {
	args := m.Called(ctx, o, amount, reason)
	return args.Get(0).(ports.RefundRecord), args.Error(1)
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("123 Main St", "Springfield", "IL", "62704", "US", "")
	require.NoError(t, err)
	return address
}

func testItemInputs() []commands.ItemInput {
	return []commands.ItemInput{
		{
			ProductID: kernel.NewUUID(),
			Quantity:  2,
			UnitPrice: order.MustMoneyFromString("29.99"),
			Discount:  order.ZeroMoney(),
		},
	}
}

func testCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		testItemInputs(),
		testAddress(t),
		"leave at door",
	)
	require.NoError(t, err)
	return cmd
}

// orderInStatus builds a persisted-looking order and walks it to the wanted
// status through legal transitions.
func orderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	items := []order.Item{}
	for _, input := range testItemInputs() {
		item, err := order.NewItem(kernel.NewUUID(), input.ProductID, input.Quantity, input.UnitPrice, input.Discount, 1000)
		require.NoError(t, err)
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		items, testAddress(t), "", order.DefaultPricingConfig(),
	)
	require.NoError(t, err)

	paths := map[order.Status][]order.Status{
		order.StatusPending:    {},
		order.StatusProcessing: {order.StatusProcessing},
		order.StatusShipped:    {order.StatusProcessing, order.StatusShipped},
		order.StatusDelivered:  {order.StatusProcessing, order.StatusShipped, order.StatusDelivered},
		order.StatusCancelled:  {order.StatusCancelled},
	}
	for _, next := range paths[status] {
		require.NoError(t, aggregate.TransitionTo(next))
	}
	require.Equal(t, status, aggregate.Status())
	return aggregate
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, order.DefaultPricingConfig())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, order.StatusPending, created.Status())
	assert.Len(t, created.Items(), 1)
	assert.True(t, created.TotalAmount().Equal(order.MustMoneyFromString("64.78")))

	event := publisher.Calls[0].Arguments.Get(1).(ports.OrderEvent)
	assert.Equal(t, ports.EventOrderCreated, event.Kind)
	assert.Equal(t, created.ID().String(), event.OrderID)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PublishErrorDoesNotFail(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("ports.OrderEvent")).
		Return(errors.New("queue full")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, order.DefaultPricingConfig())
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, nil, order.DefaultPricingConfig())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_ItemOverQuantityCap(t *testing.T) {
	ctx := t.Context()
	items := testItemInputs()
	items[0].Quantity = 1001
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		items, testAddress(t), "",
	)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, nil, order.DefaultPricingConfig())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher, order.DefaultPricingConfig())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := testCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil, order.DefaultPricingConfig())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

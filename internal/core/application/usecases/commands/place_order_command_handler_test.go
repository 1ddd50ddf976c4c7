package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/store"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type checkoutMocks struct {
	factory  *MockCheckoutUoWFactory
	uow      *MockUoW
	settings *MockSettingsRepository
	products *MockProductRepository
	orders   *MockOrderRepository
	guard    *MockCheckoutGuard
	notifier *MockOrderNotifier
}

func newCheckoutMocks() checkoutMocks {
	m := checkoutMocks{
		factory:  new(MockCheckoutUoWFactory),
		uow:      new(MockUoW),
		settings: new(MockSettingsRepository),
		products: new(MockProductRepository),
		orders:   new(MockOrderRepository),
		guard:    new(MockCheckoutGuard),
		notifier: new(MockOrderNotifier),
	}
	m.factory.On("Create").Return(m.uow).Maybe()
	m.uow.On("StoreSettingsRepository").Return(m.settings).Maybe()
	m.uow.On("ProductRepository").Return(m.products).Maybe()
	m.uow.On("OrderRepository").Return(m.orders).Maybe()
	return m
}

func (m checkoutMocks) handler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(m.factory, m.guard, m.notifier, discardLogger)
}

func (m checkoutMocks) assertExpectations(t *testing.T) {
	m.uow.AssertExpectations(t)
	m.settings.AssertExpectations(t)
	m.products.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.guard.AssertExpectations(t)
	m.notifier.AssertExpectations(t)
}

func checkoutCommand(t *testing.T, key string) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "Ana", "11999990000", "Rua A, 1",
		[]commands.OrderLine{{ProductID: 1, Quantity: 3}, {ProductID: 7, Quantity: 1}}, "pix", "", key)
	require.NoError(t, err)
	return cmd
}

func openStore() *store.Settings {
	return store.DefaultSettings(time.Now())
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, "")
	m := newCheckoutMocks()

	var saved *order.Order
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.settings.On("Get", ctx).Return(openStore(), nil).Once(),
		m.products.On("GetByIDs", ctx, []int64{1, 7}).Return([]*catalog.Product{
			product(t, 1, "Empada de Frango", "8.00"),
			product(t, 7, "Bolo de Goiabada", "18.00"),
		}, nil).Once(),
		m.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	m.notifier.On("OrderPlaced", ctx, mock.AnythingOfType("*order.Order")).Return().Once()

	h := m.handler()
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	m.assertExpectations(t)
	require.NotNil(t, saved)
	assert.True(t, saved.ID().IsEqual(cmd.OrderID()))
	assert.Equal(t, order.Pending, saved.Status())
	assert.Equal(t, "42.00", saved.TotalAmount().String())
	require.Len(t, saved.Items(), 2)
	assert.Equal(t, "24.00", saved.Items()[0].Subtotal().String())
}

func TestPlaceOrderCommandHandler_Handle_StoreClosed(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, "")
	m := newCheckoutMocks()

	closed := openStore()
	closed.Toggle(time.Now())

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.settings.On("Get", ctx).Return(closed, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := m.handler()
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrStoreIsClosed)
	m.assertExpectations(t)
	m.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, "")
	m := newCheckoutMocks()

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.settings.On("Get", ctx).Return(openStore(), nil).Once()
	m.products.On("GetByIDs", ctx, []int64{1, 7}).
		Return([]*catalog.Product{product(t, 1, "Empada de Frango", "8.00")}, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := m.handler()
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "product 7 is not in the catalog")
	m.assertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_DuplicateKey(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, "key-1")
	m := newCheckoutMocks()

	m.guard.On("Claim", ctx, "key-1").Return(false, nil).Once()

	h := m.handler()
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDuplicateCheckout)
	m.assertExpectations(t)
	m.factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_ReleasesKeyOnFailure(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, "key-2")
	m := newCheckoutMocks()

	mock.InOrder(
		m.guard.On("Claim", ctx, "key-2").Return(true, nil).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.settings.On("Get", ctx).Return(openStore(), nil).Once(),
		m.products.On("GetByIDs", ctx, []int64{1, 7}).Return([]*catalog.Product{
			product(t, 1, "Empada de Frango", "8.00"),
			product(t, 7, "Bolo de Goiabada", "18.00"),
		}, nil).Once(),
		m.orders.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
		m.guard.On("Release", ctx, "key-2").Return(nil).Once(),
	)

	h := m.handler()
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	m.assertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ClaimError(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, "key-3")
	m := newCheckoutMocks()

	m.guard.On("Claim", ctx, "key-3").Return(false, errors.New("redis down")).Once()

	h := m.handler()
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "redis down")
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, "")
	m := newCheckoutMocks()

	m.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := m.handler()
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	m.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()
	cmd := checkoutCommand(t, "")
	m := newCheckoutMocks()

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.settings.On("Get", ctx).Return(openStore(), nil).Once()
	m.products.On("GetByIDs", ctx, []int64{1, 7}).Return([]*catalog.Product{
		product(t, 1, "Empada de Frango", "8.00"),
		product(t, 7, "Bolo de Goiabada", "18.00"),
	}, nil).Once()
	m.orders.On("Add", ctx, mock.Anything).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	h := m.handler()
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	m.notifier.AssertNotCalled(t, "OrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	m := newCheckoutMocks()

	h := m.handler()
	err := h.Handle(context.Background(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}

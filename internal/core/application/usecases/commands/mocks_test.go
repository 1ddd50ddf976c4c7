package commands_test

import (
	"context"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/store"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockProductRepository) Get(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*catalog.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]*catalog.Product)
	return p, args.Error(1)
}
func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) Get(ctx context.Context) (*store.Settings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*store.Settings)
	return s, args.Error(1)
}
func (m *MockSettingsRepository) Save(ctx context.Context, s *store.Settings) error {
	return m.Called(ctx, s).Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) UpsertAll(ctx context.Context, customers []*customer.Customer) error {
	return m.Called(ctx, customers).Error(0)
}
func (m *MockCustomerRepository) DeleteAllExcept(ctx context.Context, keep []*customer.Customer) error {
	return m.Called(ctx, keep).Error(0)
}
func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*customer.Customer)
	return c, args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) StoreSettingsRepository() ports.StoreSettingsRepository {
	return m.Called().Get(0).(ports.StoreSettingsRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	return m.Called().Get(0).(commands.ProductUoW)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	return m.Called().Get(0).(commands.SettingsUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return m.Called().Get(0).(commands.CheckoutUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockCheckoutGuard struct{ mock.Mock }

func (m *MockCheckoutGuard) Claim(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
func (m *MockCheckoutGuard) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) OrderPlaced(ctx context.Context, placed *order.Order) {
	m.Called(ctx, placed)
}

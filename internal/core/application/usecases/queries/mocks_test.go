package queries_test

import (
	"context"
	"io"
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/model/store"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

type MockOrderExporter struct{ mock.Mock }

func (m *MockOrderExporter) ContentType() string   { return m.Called().String(0) }
func (m *MockOrderExporter) FileExtension() string { return m.Called().String(0) }
func (m *MockOrderExporter) Export(w io.Writer, orders []*order.Order) error {
	return m.Called(w, orders).Error(0)
}

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

// storedOrder builds an order as the repository would return it.
func storedOrder(t *testing.T, phone string, total string, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()
	amount := money(t, total)
	productID := int64(1)
	item, err := order.RestoreItem(kernel.NewUUID(), &productID, "Empada de Frango", amount, 1, amount)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.RestoreDeliveryDetails("Ana", phone, "Rua das Flores, 10"),
		[]*order.Item{item},
		amount,
		status,
		order.PaymentPix,
		"",
		createdAt,
		createdAt,
	)
	require.NoError(t, err)
	return o
}

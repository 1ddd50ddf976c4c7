package commands_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func product(t *testing.T, id int64, name, price string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, name, "", money(t, price), nil, catalog.Sweets)
	require.NoError(t, err)
	return p
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	details, err := order.NewDeliveryDetails("Ana", "11999990000", "Rua A, 1")
	require.NoError(t, err)
	productID := int64(1)
	item, err := order.NewItem(kernel.NewUUID(), &productID, "Empada de Frango", money(t, "8.00"), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), details, []*order.Item{item}, order.PaymentPix, "", time.Now())
	require.NoError(t, err)
	return o
}

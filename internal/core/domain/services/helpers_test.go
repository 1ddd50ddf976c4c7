package services_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, phone, name string, total string, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()
	amount, err := kernel.MoneyFromString(total)
	require.NoError(t, err)
	productID := int64(1)
	item, err := order.NewItem(kernel.NewUUID(), &productID, "Empada de Frango", amount, 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.RestoreDeliveryDetails(name, phone, "Rua "+name),
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

package services_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBoard_Group(t *testing.T) {
	base := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	pending := restoredOrder(t, "1", "Ana", "8.00", order.Pending, base)
	confirmed := restoredOrder(t, "2", "Bia", "8.00", order.Confirmed, base.Add(time.Minute))
	preparing := restoredOrder(t, "3", "Caio", "8.00", order.Preparing, base.Add(2*time.Minute))
	delivered := restoredOrder(t, "4", "Davi", "8.00", order.Delivered, base.Add(3*time.Minute))
	cancelled := restoredOrder(t, "5", "Eva", "8.00", order.Cancelled, base.Add(4*time.Minute))

	t.Run("should place each order in exactly one column", func(t *testing.T) {
		board := services.NewOrderBoard().Group([]*order.Order{pending, delivered, confirmed, cancelled, preparing})

		require.Len(t, board.InProgress, 2)
		assert.True(t, board.InProgress[0].IsEqual(confirmed), "newest first")
		assert.True(t, board.InProgress[1].IsEqual(pending))

		require.Len(t, board.OutForDelivery, 1)
		assert.True(t, board.OutForDelivery[0].IsEqual(preparing))

		require.Len(t, board.History, 2)
		assert.True(t, board.History[0].IsEqual(cancelled))
		assert.True(t, board.History[1].IsEqual(delivered))
	})

	t.Run("should return empty columns for no orders", func(t *testing.T) {
		board := services.NewOrderBoard().Group(nil)

		assert.NotNil(t, board.InProgress)
		assert.Empty(t, board.InProgress)
		assert.Empty(t, board.OutForDelivery)
		assert.Empty(t, board.History)
	})
}

package services_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueCalculator_Monthly(t *testing.T) {
	calc := services.NewRevenueCalculator(time.UTC)
	march := func(day, hour int) time.Time { return time.Date(2025, time.March, day, hour, 0, 0, 0, time.UTC) }

	orders := []*order.Order{
		restoredOrder(t, "1", "Ana", "10.00", order.Delivered, march(1, 0)),
		restoredOrder(t, "2", "Bia", "25.50", order.Delivered, march(31, 23)),
		restoredOrder(t, "3", "Caio", "99.00", order.Cancelled, march(10, 12)),
		restoredOrder(t, "4", "Davi", "40.00", order.Preparing, march(10, 12)),
		restoredOrder(t, "5", "Eva", "7.00", order.Delivered, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)),
		restoredOrder(t, "6", "Fabi", "3.00", order.Delivered, time.Date(2025, time.February, 28, 23, 59, 0, 0, time.UTC)),
	}

	t.Run("should count only delivered orders in the month", func(t *testing.T) {
		total := calc.Monthly(orders, 2025, time.March)

		assert.Equal(t, "35.50", total.String())
	})

	t.Run("should return zero for a month without deliveries", func(t *testing.T) {
		assert.True(t, calc.Monthly(orders, 2024, time.December).IsZero())
		assert.True(t, calc.Monthly(nil, 2025, time.March).IsZero())
	})

	t.Run("should evaluate months in the calculator location", func(t *testing.T) {
		saoPaulo := time.FixedZone("BRT", -3*60*60)
		local := services.NewRevenueCalculator(saoPaulo)

		// 01:00 UTC on April 1st is still March 31st in Brazil.
		late := restoredOrder(t, "7", "Gil", "12.00", order.Delivered, time.Date(2025, time.April, 1, 1, 0, 0, 0, time.UTC))

		assert.Equal(t, "12.00", local.Monthly([]*order.Order{late}, 2025, time.March).String())
		assert.True(t, local.Monthly([]*order.Order{late}, 2025, time.April).IsZero())
	})
}

func TestRevenueCalculator_Daily(t *testing.T) {
	calc := services.NewRevenueCalculator(nil)
	day := func(d, hour int) time.Time { return time.Date(2025, time.March, d, hour, 0, 0, 0, time.UTC) }

	orders := []*order.Order{
		restoredOrder(t, "1", "Ana", "10.00", order.Delivered, day(2, 9)),
		restoredOrder(t, "2", "Bia", "15.00", order.Delivered, day(2, 20)),
		restoredOrder(t, "3", "Caio", "8.00", order.Delivered, day(5, 15)),
		restoredOrder(t, "4", "Davi", "50.00", order.Cancelled, day(5, 15)),
		restoredOrder(t, "5", "Eva", "22.00", order.Delivered, day(1, 14)),
	}

	days := calc.Daily(orders)

	require.Len(t, days, 3)
	assert.Equal(t, day(5, 0), days[0].Day)
	assert.Equal(t, "8.00", days[0].Total.String())
	assert.Equal(t, 1, days[0].Orders)
	assert.Equal(t, day(2, 0), days[1].Day)
	assert.Equal(t, "25.00", days[1].Total.String())
	assert.Equal(t, 2, days[1].Orders)
	assert.Equal(t, day(1, 0), days[2].Day)
}

func TestRevenueCalculator_MonthBounds(t *testing.T) {
	calc := services.NewRevenueCalculator(time.UTC)

	start, end := calc.MonthBounds(2024, time.December)

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

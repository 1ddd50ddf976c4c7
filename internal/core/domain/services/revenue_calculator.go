package services

import (
	"sort"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// DailyRevenue is the delivered total for one calendar day.
type DailyRevenue struct {
	Day    time.Time
	Total  kernel.Money
	Orders int
}

// RevenueCalculator sums delivered orders. Only Delivered orders count as
// revenue; pending, in-flight and cancelled ones are ignored.
//
// Days and months are evaluated in the calculator's location so that an
// order placed at 23:30 local time lands on the right day.
//
// Example usage:
//
//	calc := services.NewRevenueCalculator(time.Local)
//	total := calc.Monthly(orders, 2025, time.March)
//	days := calc.Daily(orders)
type RevenueCalculator struct {
	loc *time.Location
}

// NewRevenueCalculator returns a calculator for loc. A nil loc means UTC.
func NewRevenueCalculator(loc *time.Location) RevenueCalculator {
	if loc == nil {
		loc = time.UTC
	}
	return RevenueCalculator{loc: loc}
}

// MonthBounds returns [start, end) of the given month in the calculator's location.
func (c RevenueCalculator) MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, c.loc)
	return start, start.AddDate(0, 1, 0)
}

// Monthly returns the sum of totals of delivered orders created in the month.
//
// Parameters:
//   - orders: any orders; filtering by status and date happens here
//   - year, month: the month to report
//
// Returns:
//   - kernel.Money: the revenue, 0.00 when nothing was delivered
func (c RevenueCalculator) Monthly(orders []*order.Order, year int, month time.Month) kernel.Money {
	start, end := c.MonthBounds(year, month)
	total := kernel.ZeroMoney()
	for _, o := range orders {
		if o.Status() != order.Delivered {
			continue
		}
		created := o.CreatedAt().In(c.loc)
		if created.Before(start) || !created.Before(end) {
			continue
		}
		total = total.Add(o.TotalAmount())
	}
	return total
}

// Daily groups delivered orders by calendar day, most recent day first.
func (c RevenueCalculator) Daily(orders []*order.Order) []DailyRevenue {
	byDay := make(map[time.Time]*DailyRevenue)
	for _, o := range orders {
		if o.Status() != order.Delivered {
			continue
		}
		created := o.CreatedAt().In(c.loc)
		day := time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, c.loc)

		entry, ok := byDay[day]
		if !ok {
			entry = &DailyRevenue{Day: day, Total: kernel.ZeroMoney()}
			byDay[day] = entry
		}
		entry.Total = entry.Total.Add(o.TotalAmount())
		entry.Orders++
	}

	days := make([]DailyRevenue, 0, len(byDay))
	for _, entry := range byDay {
		days = append(days, *entry)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day.After(days[j].Day)
	})
	return days
}

package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// GetRevenueQueryHandler loads the month's orders and sums the delivered
// ones with services.RevenueCalculator.
type GetRevenueQueryHandler struct {
	repo       ports.OrderRepository
	calculator services.RevenueCalculator
}

// NewGetRevenueQueryHandler creates the handler. Months and days are cut in loc.
func NewGetRevenueQueryHandler(repo ports.OrderRepository, loc *time.Location) GetRevenueQueryHandler {
	return GetRevenueQueryHandler{repo: repo, calculator: services.NewRevenueCalculator(loc)}
}

func (h GetRevenueQueryHandler) Handle(ctx context.Context, query GetRevenueQuery) (GetRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	from, to := h.calculator.MonthBounds(query.Year(), query.Month())
	orders, err := h.repo.GetCreatedBetween(ctx, from, to)
	if err != nil {
		return GetRevenueQueryResponse{}, err
	}

	daily := h.calculator.Daily(orders)
	days := make([]DailyRevenueResponse, 0, len(daily))
	delivered := 0
	for _, d := range daily {
		days = append(days, DailyRevenueResponse{Day: d.Day, Total: d.Total, Orders: d.Orders})
		delivered += d.Orders
	}

	return GetRevenueQueryResponse{
		Year:            query.Year(),
		Month:           query.Month(),
		Total:           h.calculator.Monthly(orders, query.Year(), query.Month()),
		DeliveredOrders: delivered,
		Days:            days,
	}, nil
}

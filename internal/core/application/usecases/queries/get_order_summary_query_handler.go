package queries

import (
	"context"

	"bakery/internal/core/ports"
)

// GetOrderSummaryQueryHandler loads the order and returns its Summary text.
type GetOrderSummaryQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderSummaryQueryHandler(repo ports.OrderRepository) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{repo: repo}
}

func (h GetOrderSummaryQueryHandler) Handle(ctx context.Context, query GetOrderSummaryQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	o, err := h.repo.Get(ctx, query.OrderID())
	if err != nil {
		return "", err
	}

	return o.Summary(), nil
}

package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery renders one order as chat-ready text.
type GetOrderSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}
	return GetOrderSummaryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

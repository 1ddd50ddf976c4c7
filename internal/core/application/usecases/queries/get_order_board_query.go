package queries

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrGetOrderBoardQueryIsNotConstructed = errors.New(
	"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
)

// GetOrderBoardQuery returns orders split into the dashboard columns.
type GetOrderBoardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderBoardQuery() GetOrderBoardQuery {
	return GetOrderBoardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// GetOrderBoardQueryResponse holds the three dashboard columns, newest
// first in each.
type GetOrderBoardQueryResponse struct {
	InProgress     []OrderResponse
	OutForDelivery []OrderResponse
	History        []OrderResponse
}

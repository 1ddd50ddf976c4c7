package queries

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders with their items, newest first.
//
// Example:
//
//	query, _ := NewGetOrdersQuery("pending")
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status order.Status
	guard  guard.ConstructorGuard
}

// NewGetOrdersQuery optionally restricts the list to one status. An empty
// status lists every order.
func NewGetOrdersQuery(status string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}
	if strings.TrimSpace(status) == "" {
		return q, nil
	}

	s, err := order.ParseStatus(status)
	if err != nil {
		return GetOrdersQuery{}, err
	}
	q.status = s
	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the filter; order.Unknown means no filter.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

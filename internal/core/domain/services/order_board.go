package services

import (
	"sort"

	"bakery/internal/core/domain/model/order"
)

// Board is the admin dashboard view of orders, newest first in each column.
type Board struct {
	// InProgress holds pending and confirmed orders.
	InProgress []*order.Order
	// OutForDelivery holds orders being prepared.
	OutForDelivery []*order.Order
	// History holds delivered and cancelled orders.
	History []*order.Order
}

// OrderBoard sorts orders into dashboard columns.
type OrderBoard struct{}

func NewOrderBoard() OrderBoard {
	return OrderBoard{}
}

// Group places every valid order in exactly one column. Orders with an
// invalid status are skipped.
func (OrderBoard) Group(orders []*order.Order) Board {
	sorted := make([]*order.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt().After(sorted[j].CreatedAt())
	})

	board := Board{
		InProgress:     []*order.Order{},
		OutForDelivery: []*order.Order{},
		History:        []*order.Order{},
	}
	for _, o := range sorted {
		switch o.Status() {
		case order.Pending, order.Confirmed:
			board.InProgress = append(board.InProgress, o)
		case order.Preparing:
			board.OutForDelivery = append(board.OutForDelivery, o)
		case order.Delivered, order.Cancelled:
			board.History = append(board.History, o)
		case order.Unknown:
		}
	}
	return board
}

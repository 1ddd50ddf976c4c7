package queries

import (
	"context"

	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// GetOrderBoardQueryHandler groups every order with services.OrderBoard.
type GetOrderBoardQueryHandler struct {
	repo  ports.OrderRepository
	board services.OrderBoard
}

func NewGetOrderBoardQueryHandler(repo ports.OrderRepository) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{repo: repo, board: services.NewOrderBoard()}
}

func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) (GetOrderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderBoardQueryResponse{}, err
	}

	orders, err := h.repo.GetAll(ctx)
	if err != nil {
		return GetOrderBoardQueryResponse{}, err
	}

	board := h.board.Group(orders)
	return GetOrderBoardQueryResponse{
		InProgress:     orderResponsesFromDomain(board.InProgress),
		OutForDelivery: orderResponsesFromDomain(board.OutForDelivery),
		History:        orderResponsesFromDomain(board.History),
	}, nil
}

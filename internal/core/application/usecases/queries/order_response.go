package queries

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderResponse is the admin read model of an order.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	TotalAmount     kernel.Money
	Status          string
	PaymentMethod   string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Items           []OrderItemResponse
}

// OrderItemResponse is one order line. ProductID is nil when the product
// no longer exists.
type OrderItemResponse struct {
	ID           kernel.UUID
	ProductID    *int64
	ProductName  string
	ProductPrice kernel.Money
	Quantity     int
	Subtotal     kernel.Money
}

// NewOrderResponse maps an order aggregate to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:           item.ID(),
			ProductID:    item.ProductID(),
			ProductName:  item.ProductName(),
			ProductPrice: item.UnitPrice(),
			Quantity:     item.Quantity(),
			Subtotal:     item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:              o.ID(),
		CustomerName:    o.Details().Name(),
		CustomerPhone:   o.Details().Phone(),
		CustomerAddress: o.Details().Address(),
		TotalAmount:     o.TotalAmount(),
		Status:          o.Status().String(),
		PaymentMethod:   o.PaymentMethod().String(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Items:           items,
	}
}

func orderResponsesFromDomain(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses
}

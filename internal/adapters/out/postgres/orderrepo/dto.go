// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order row and its item rows are always written and read together.
package orderrepo

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              string          `gorm:"type:varchar(36);primaryKey"`
	CustomerName    string          `gorm:"type:varchar(255);not null"`
	CustomerPhone   string          `gorm:"type:varchar(64);not null;index"`
	CustomerAddress string          `gorm:"type:text;not null"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status          string          `gorm:"type:varchar(16);not null;index"`
	PaymentMethod   string          `gorm:"type:varchar(16)"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order. Name and price are copied from the
// product when the order is placed, so later price edits do not change
// history. Position keeps the lines in cart order.
type OrderItemDTO struct {
	ID           string          `gorm:"type:varchar(36);primaryKey"`
	OrderID      string          `gorm:"type:varchar(36);not null;index"`
	Position     int             `gorm:"not null"`
	ProductID    *int64          `gorm:"index"`
	ProductName  string          `gorm:"type:varchar(255);not null"`
	ProductPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Quantity     int             `gorm:"not null"`
	Subtotal     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName overrides GORM's default "order_item_dtos".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().String()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:           item.ID().String(),
			OrderID:      orderID,
			Position:     i,
			ProductID:    item.ProductID(),
			ProductName:  item.ProductName(),
			ProductPrice: item.UnitPrice().Decimal(),
			Quantity:     item.Quantity(),
			Subtotal:     item.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		CustomerName:    o.Details().Name(),
		CustomerPhone:   o.Details().Phone(),
		CustomerAddress: o.Details().Address(),
		TotalAmount:     o.TotalAmount().Decimal(),
		Status:          o.Status().String(),
		PaymentMethod:   o.PaymentMethod().String(),
		Notes:           o.Notes(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Items:           items,
	}
}

// toDomain reconstructs the aggregate with RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, totalErr := kernel.NewMoney(dto.TotalAmount)
	status, statusErr := order.ParseStatus(dto.Status)
	payment, paymentErr := order.ParsePaymentMethod(dto.PaymentMethod)
	if err = errors.Join(totalErr, statusErr, paymentErr); err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.RestoreDeliveryDetails(dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress),
		items,
		total,
		status,
		payment,
		dto.Notes,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	price, priceErr := kernel.NewMoney(dto.ProductPrice)
	subtotal, subtotalErr := kernel.NewMoney(dto.Subtotal)
	if err = errors.Join(priceErr, subtotalErr); err != nil {
		return nil, err
	}

	return order.RestoreItem(id, dto.ProductID, dto.ProductName, price, dto.Quantity, subtotal)
}

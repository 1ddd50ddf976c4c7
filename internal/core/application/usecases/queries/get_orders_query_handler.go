package queries

import (
	"context"
	"database/sql"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads orders and their items with two queries.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns orders newest first; items keep their cart order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.loadOrders(ctx, query.Status())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	index := make(map[string]int, len(orders))
	ids := make([]string, 0, len(orders))
	for i, o := range orders {
		index[o.ID.String()] = i
		ids = append(ids, o.ID.String())
	}

	if err = h.attachItems(ctx, ids, index, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) loadOrders(ctx context.Context, status order.Status) ([]OrderResponse, error) {
	query := `
		SELECT
			id,
			customer_name,
			customer_phone,
			customer_address,
			total_amount,
			status,
			payment_method,
			notes,
			created_at,
			updated_at
		FROM orders`
	var args []any
	if status != order.Unknown {
		query += `
		WHERE status = ?`
		args = append(args, status.String())
	}
	query += `
		ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var o OrderResponse
		var id string
		var total decimal.Decimal
		var payment, notes sql.NullString

		err = rows.Scan(
			&id,
			&o.CustomerName,
			&o.CustomerPhone,
			&o.CustomerAddress,
			&total,
			&o.Status,
			&payment,
			&notes,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if o.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		if o.TotalAmount, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		o.PaymentMethod = payment.String
		o.Notes = notes.String
		o.CreatedAt = o.CreatedAt.UTC()
		o.UpdatedAt = o.UpdatedAt.UTC()
		o.Items = make([]OrderItemResponse, 0)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h GetOrdersQueryHandler) attachItems(
	ctx context.Context,
	ids []string,
	index map[string]int,
	orders []OrderResponse,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			product_name,
			product_price,
			quantity,
			subtotal
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, orderID string
		var productID sql.NullInt64
		var price, subtotal decimal.Decimal

		err = rows.Scan(&id, &orderID, &productID, &item.ProductName, &price, &item.Quantity, &subtotal)
		if err != nil {
			return err
		}

		if item.ID, err = kernel.UUIDFromString(id); err != nil {
			return err
		}
		if productID.Valid {
			pid := productID.Int64
			item.ProductID = &pid
		}
		if item.ProductPrice, err = kernel.NewMoney(price); err != nil {
			return err
		}
		if item.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}

	return rows.Err()
}

package queries

import (
	"context"
	"database/sql"

	"bakery/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetCustomersQueryHandler reads the customers table maintained by the
// customer summary job.
type GetCustomersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomersQueryHandler(db *gorm.DB) GetCustomersQueryHandler {
	return GetCustomersQueryHandler{db: db}
}

func (h GetCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersQuery,
) ([]GetCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			address,
			total_orders,
			last_order_at,
			created_at
		FROM customers
		ORDER BY last_order_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]GetCustomersQueryResponse, 0)
	for rows.Next() {
		var c GetCustomersQueryResponse
		var id string
		var address sql.NullString

		err = rows.Scan(&id, &c.Name, &c.Phone, &address, &c.TotalOrders, &c.LastOrderAt, &c.CreatedAt)
		if err != nil {
			return nil, err
		}

		if c.ID, err = kernel.UUIDFromString(id); err != nil {
			return nil, err
		}
		c.Address = address.String
		c.LastOrderAt = c.LastOrderAt.UTC()
		c.CreatedAt = c.CreatedAt.UTC()
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

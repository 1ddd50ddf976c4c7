package queries

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCatalogQueryHandler reads products straight from the database.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog listings.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle returns the products ordered by id.
func (h GetCatalogQueryHandler) Handle(ctx context.Context, query GetCatalogQuery) ([]GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, name, description, price, images, category
		FROM products`
	var args []any
	if query.Category() != catalog.UnknownCategory {
		sql += `
		WHERE category = ?`
		args = append(args, query.Category().String())
	}
	sql += `
		ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetCatalogQueryResponse, 0)
	for rows.Next() {
		var p GetCatalogQueryResponse
		var price decimal.Decimal
		var images pq.StringArray

		if err = rows.Scan(&p.ID, &p.Name, &p.Description, &price, &images, &p.Category); err != nil {
			return nil, err
		}

		p.Price, err = kernel.NewMoney(price)
		if err != nil {
			return nil, err
		}
		p.Images = []string(images)
		if p.Images == nil {
			p.Images = []string{}
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

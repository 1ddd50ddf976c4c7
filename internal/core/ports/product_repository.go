// Package ports defines the contracts between the bakery core and its
// infrastructure: repositories, the unit of work, the checkout guard, the
// order notifier and the order exporter.
package ports

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product. Used when seeding the catalog.
	Add(ctx context.Context, product *catalog.Product) error

	// Update persists a changed product (its price).
	// Returns an error if the product does not exist.
	Update(ctx context.Context, product *catalog.Product) error

	// Get retrieves a product by its catalog id.
	// Returns errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id int64) (*catalog.Product, error)

	// GetByIDs retrieves the products with the given ids, ordered by id.
	// Unknown ids are silently skipped; callers compare lengths.
	GetByIDs(ctx context.Context, ids []int64) ([]*catalog.Product, error)

	// Count returns how many products exist.
	Count(ctx context.Context) (int64, error)
}

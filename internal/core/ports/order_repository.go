package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always stored and loaded together with its items.
type OrderRepository interface {
	// Add persists a new order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change. Items are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order's items and then the order itself.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAll retrieves every order with its items, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetCreatedBetween retrieves orders created in [from, to), newest first.
	GetCreatedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error)
}

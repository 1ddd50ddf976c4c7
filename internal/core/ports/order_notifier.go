package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// OrderNotifier tells connected admins about new orders. Delivery is best
// effort; implementations must not block the checkout.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, placed *order.Order)
}

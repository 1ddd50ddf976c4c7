package ports

import (
	"context"

	"bakery/internal/core/domain/model/customer"
)

// CustomerRepository stores the customer summaries rebuilt from orders.
type CustomerRepository interface {
	// UpsertAll inserts new customers and overwrites existing ones by id.
	UpsertAll(ctx context.Context, customers []*customer.Customer) error

	// DeleteAllExcept removes every customer whose id is not in keep.
	// An empty keep removes all customers.
	DeleteAllExcept(ctx context.Context, keep []*customer.Customer) error

	// GetAll returns every customer ordered by last order time, newest first.
	GetAll(ctx context.Context) ([]*customer.Customer, error)
}

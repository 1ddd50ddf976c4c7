package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery lists customer summaries, most recent order first.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse is one customers table row.
type GetCustomersQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Phone       string
	Address     string
	TotalOrders int
	LastOrderAt time.Time
	CreatedAt   time.Time
}

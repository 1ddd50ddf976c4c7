package commands

import (
	"context"

	"bakery/internal/core/domain/services"
)

// RefreshCustomersCommandHandler aggregates orders by phone, upserts the
// resulting customer rows and drops customers left without orders.
type RefreshCustomersCommandHandler struct {
	uowFactory CustomerUoWFactory
	aggregator services.CustomerAggregator
}

// NewRefreshCustomersCommandHandler creates the handler.
func NewRefreshCustomersCommandHandler(uowFactory CustomerUoWFactory) RefreshCustomersCommandHandler {
	return RefreshCustomersCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewCustomerAggregator(),
	}
}

// Handle returns the number of customers written.
func (h *RefreshCustomersCommandHandler) Handle(ctx context.Context, cmd RefreshCustomersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	customers, err := h.aggregator.Aggregate(orders)
	if err != nil {
		return 0, err
	}

	repo := uow.CustomerRepository()
	if err = repo.UpsertAll(ctx, customers); err != nil {
		return 0, err
	}
	if err = repo.DeleteAllExcept(ctx, customers); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(customers), nil
}

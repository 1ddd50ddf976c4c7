package commands

import (
	"context"
)

// UpdateProductPriceCommandHandler changes exactly one product's price.
// Orders already placed keep their price snapshot.
type UpdateProductPriceCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductPriceCommandHandler creates a handler for price edits.
func NewUpdateProductPriceCommandHandler(uowFactory ProductUoWFactory) UpdateProductPriceCommandHandler {
	return UpdateProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, changes its price and persists it.
func (h *UpdateProductPriceCommandHandler) Handle(ctx context.Context, cmd UpdateProductPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	product, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	product.ChangePrice(cmd.Price())

	if err = productRepo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrUpdateProductPriceCommandIsNotConstructed = errors.New(
	"UpdateProductPriceCommand must be created via NewUpdateProductPriceCommand constructor",
)

// UpdateProductPriceCommand sets a new unit price on one catalog product.
type UpdateProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID int64
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateProductPriceCommand validates the product id. The price is
// already a valid non-negative Money.
func NewUpdateProductPriceCommand(productID int64, price kernel.Money) (UpdateProductPriceCommand, error) {
	if productID <= 0 {
		return UpdateProductPriceCommand{}, errs.NewValueIsInvalidErrorWithCause("product id is invalid",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	return UpdateProductPriceCommand{
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductPriceCommandIsNotConstructed)
}

// ProductID returns the product to update.
func (c UpdateProductPriceCommand) ProductID() int64 {
	return c.productID
}

// Price returns the new price.
func (c UpdateProductPriceCommand) Price() kernel.Money {
	return c.price
}

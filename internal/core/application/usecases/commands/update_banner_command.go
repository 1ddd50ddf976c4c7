package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/store"
	"bakery/internal/pkg/guard"
)

var ErrUpdateBannerCommandIsNotConstructed = errors.New(
	"UpdateBannerCommand must be created via NewUpdateBannerCommand constructor",
)

// UpdateBannerCommand replaces the promotional banner.
type UpdateBannerCommand struct { //nolint:recvcheck //using for validation
	banner store.Banner

	guard guard.ConstructorGuard
}

// NewUpdateBannerCommand validates the banner fields.
func NewUpdateBannerCommand(active bool, text string, price kernel.Money, discount int) (UpdateBannerCommand, error) {
	banner, err := store.NewBanner(active, text, price, discount)
	if err != nil {
		return UpdateBannerCommand{}, err
	}
	return UpdateBannerCommand{
		banner: banner,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBannerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBannerCommandIsNotConstructed)
}

// Banner returns the new banner.
func (c UpdateBannerCommand) Banner() store.Banner {
	return c.banner
}

package queries

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrGetStoreSettingsQueryIsNotConstructed = errors.New(
	"GetStoreSettingsQuery must be created via NewGetStoreSettingsQuery constructor",
)

// GetStoreSettingsQuery reads the open flag, opening hours and banner.
type GetStoreSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStoreSettingsQuery() GetStoreSettingsQuery {
	return GetStoreSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStoreSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreSettingsQueryIsNotConstructed)
}

// GetStoreSettingsQueryResponse is the public store status.
type GetStoreSettingsQueryResponse struct {
	IsOpen       bool
	OpeningHours string
	Banner       BannerResponse
	UpdatedAt    time.Time
}

// BannerResponse carries the banner with its price after discount.
type BannerResponse struct {
	Active          bool
	Text            string
	Price           kernel.Money
	Discount        int
	DiscountedPrice kernel.Money
}

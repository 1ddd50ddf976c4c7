package queries

import (
	"context"

	"bakery/internal/core/ports"
)

// GetStoreSettingsQueryHandler reads the settings through the repository so
// a store that was never configured reports the defaults.
type GetStoreSettingsQueryHandler struct {
	repo ports.StoreSettingsRepository
}

func NewGetStoreSettingsQueryHandler(repo ports.StoreSettingsRepository) GetStoreSettingsQueryHandler {
	return GetStoreSettingsQueryHandler{repo: repo}
}

func (h GetStoreSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreSettingsQuery,
) (GetStoreSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreSettingsQueryResponse{}, err
	}

	settings, err := h.repo.Get(ctx)
	if err != nil {
		return GetStoreSettingsQueryResponse{}, err
	}

	banner := settings.Banner()
	return GetStoreSettingsQueryResponse{
		IsOpen:       settings.IsOpen(),
		OpeningHours: settings.OpeningHours(),
		Banner: BannerResponse{
			Active:          banner.Active(),
			Text:            banner.Text(),
			Price:           banner.Price(),
			Discount:        banner.Discount(),
			DiscountedPrice: banner.DiscountedPrice(),
		},
		UpdatedAt: settings.UpdatedAt(),
	}, nil
}

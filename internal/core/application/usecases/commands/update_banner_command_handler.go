package commands

import (
	"context"
	"time"
)

// UpdateBannerCommandHandler saves a new promotional banner.
type UpdateBannerCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewUpdateBannerCommandHandler creates a handler for banner edits.
func NewUpdateBannerCommandHandler(uowFactory SettingsUoWFactory) UpdateBannerCommandHandler {
	return UpdateBannerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the banner on the settings singleton.
func (h *UpdateBannerCommandHandler) Handle(ctx context.Context, cmd UpdateBannerCommand) error {
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

	settingsRepo := uow.StoreSettingsRepository()
	settings, err := settingsRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = settings.UpdateBanner(cmd.Banner(), time.Now()); err != nil {
		return err
	}

	if err = settingsRepo.Save(ctx, settings); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

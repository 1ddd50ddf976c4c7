package commands

import (
	"context"
	"time"
)

// ToggleStoreStatusCommandHandler flips the store open flag.
type ToggleStoreStatusCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewToggleStoreStatusCommandHandler creates a handler for store toggles.
func NewToggleStoreStatusCommandHandler(uowFactory SettingsUoWFactory) ToggleStoreStatusCommandHandler {
	return ToggleStoreStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle toggles the flag and returns the new value.
func (h *ToggleStoreStatusCommandHandler) Handle(ctx context.Context, cmd ToggleStoreStatusCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settingsRepo := uow.StoreSettingsRepository()
	settings, err := settingsRepo.Get(ctx)
	if err != nil {
		return false, err
	}

	isOpen := settings.Toggle(time.Now())

	if err = settingsRepo.Save(ctx, settings); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return isOpen, nil
}

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/store"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleStoreStatusCommandHandler_Handle(t *testing.T) {
	t.Run("toggling twice should return to the original state", func(t *testing.T) {
		ctx := context.Background()
		settings := store.DefaultSettings(time.Now())

		repo := new(MockSettingsRepository)
		repo.On("Get", ctx).Return(settings, nil).Twice()
		repo.On("Save", ctx, settings).Return(nil).Twice()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Twice()
		uow.On("StoreSettingsRepository").Return(repo).Twice()
		uow.On("Commit", ctx).Return(nil).Twice()
		uow.On("Rollback", ctx).Return(nil).Twice()
		factory := new(MockSettingsUoWFactory)
		factory.On("Create").Return(uow).Twice()

		h := commands.NewToggleStoreStatusCommandHandler(factory)

		isOpen, err := h.Handle(ctx, commands.NewToggleStoreStatusCommand())
		require.NoError(t, err)
		assert.False(t, isOpen)

		isOpen, err = h.Handle(ctx, commands.NewToggleStoreStatusCommand())
		require.NoError(t, err)
		assert.True(t, isOpen)

		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should not commit when saving fails", func(t *testing.T) {
		ctx := context.Background()
		settings := store.DefaultSettings(time.Now())

		repo := new(MockSettingsRepository)
		repo.On("Get", ctx).Return(settings, nil).Once()
		repo.On("Save", ctx, settings).Return(errors.New("save error")).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("StoreSettingsRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockSettingsUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewToggleStoreStatusCommandHandler(factory)
		_, err := h.Handle(ctx, commands.NewToggleStoreStatusCommand())

		require.EqualError(t, err, "save error")
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject a zero value command", func(t *testing.T) {
		h := commands.NewToggleStoreStatusCommandHandler(new(MockSettingsUoWFactory))
		_, err := h.Handle(context.Background(), commands.ToggleStoreStatusCommand{})

		require.ErrorIs(t, err, commands.ErrToggleStoreStatusCommandIsNotConstructed)
	})
}

func TestNewUpdateBannerCommand(t *testing.T) {
	t.Run("should reject an out of range discount", func(t *testing.T) {
		_, err := commands.NewUpdateBannerCommand(true, "Promo", money(t, "20.00"), 120)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestUpdateBannerCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	settings := store.DefaultSettings(time.Now())
	cmd, err := commands.NewUpdateBannerCommand(true, "Rosca de Creme com desconto", money(t, "22.00"), 10)
	require.NoError(t, err)

	repo := new(MockSettingsRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreSettingsRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(settings, nil).Once(),
		repo.On("Save", ctx, settings).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockSettingsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBannerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, settings.Banner().Active())
	assert.Equal(t, "Rosca de Creme com desconto", settings.Banner().Text())
	assert.Equal(t, "19.80", settings.DiscountedBannerPrice().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

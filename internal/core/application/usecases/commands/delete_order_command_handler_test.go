package commands_test

import (
	"context"
	"errors"
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteOrderCommand(id)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("orderId", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewDeleteOrderCommand(kernel.NewUUID())

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

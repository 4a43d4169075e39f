package commands_test

import (
	"testing"

	"scribeassist/internal/core/application/usecases/commands"
	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChangeStatusHandler(factory commands.OrderUoWFactory) commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(factory, services.NewAccessPolicy(), fixedClock)
}

func TestChangeOrderStatusCommandHandler_Handle_AdminConfirmsOrder(t *testing.T) {
	ctx := t.Context()
	ord := storedOrder(t, kernel.NewUUID())

	cmd, err := commands.NewChangeOrderStatusCommand(adminActor(t), ord.ID(), order.Confirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once(),
		repo.On("Update", mock.Anything, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newChangeStatusHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CompletionStampsTimestamp(t *testing.T) {
	ctx := t.Context()
	ord := storedOrder(t, kernel.NewUUID())
	require.NoError(t, ord.ChangeStatus(order.Confirmed, testNow))
	require.NoError(t, ord.ChangeStatus(order.InProgress, testNow))
	require.NoError(t, ord.ChangeStatus(order.Review, testNow))

	cmd, err := commands.NewChangeOrderStatusCommand(adminActor(t), ord.ID(), order.Completed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()
	repo.On("Update", mock.Anything, ord).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newChangeStatusHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt())
	assert.Equal(t, testNow, *updated.CompletedAt())
}

func TestChangeOrderStatusCommandHandler_Handle_CustomerIsForbidden(t *testing.T) {
	ctx := t.Context()
	owner := customerActor(t)
	ord := storedOrder(t, owner.ID())

	cmd, err := commands.NewChangeOrderStatusCommand(owner, ord.ID(), order.Confirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newChangeStatusHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, order.Pending, ord.Status())
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalEdge(t *testing.T) {
	ctx := t.Context()
	ord := storedOrder(t, kernel.NewUUID())

	cmd, err := commands.NewChangeOrderStatusCommand(adminActor(t), ord.ID(), order.Completed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newChangeStatusHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(adminActor(t), kernel.NewUUID(), order.StatusUnknown)

	require.Error(t, err)
}

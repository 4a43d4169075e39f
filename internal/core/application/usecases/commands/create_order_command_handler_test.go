package commands_test

import (
	"errors"
	"testing"

	"scribeassist/internal/core/application/usecases/commands"
	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingEngine(), fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, order.PaymentPending, created.PaymentStatus())
	// bachelor, 14 days out, 5 pages: 350 * 1.0 * 5
	assert.Equal(t, 1750, created.TotalPrice())
	assert.NoError(t, created.Number().Validate())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingEngine(), fixedClock)
	_, err := h.Handle(ctx, commands.CreateOrderCommand{})

	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_PastDeadline(t *testing.T) {
	ctx := t.Context()
	p := validCreateOrderParams(t)
	p.Deadline = testNow.AddDate(0, 0, -1)
	cmd, err := commands.NewCreateOrderCommand(p)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingEngine(), fixedClock)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_NumberConflictRetries(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConflictError("order number", "SA-DUPLICATE-0000")).Once()
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("OrderRepository").Return(repo).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingEngine(), fixedClock)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ConflictCapExceeded(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConflictError("order number", "SA-DUPLICATE-0000"))

	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(5)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingEngine(), fixedClock)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams(t))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingEngine(), fixedClock)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(validCreateOrderParams(t))
	require.NoError(t, err)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, services.NewPricingEngine(), fixedClock)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
}

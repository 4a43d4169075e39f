package commands

import (
	"context"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Only admins change statuses; the state machine decides whether the
// requested edge is legal, and entering Completed stamps the completion
// time exactly once.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	clock      Clock
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy, clock Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle processes the status change and returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.AuthorizeOrder(cmd.Actor(), services.ActionChangeOrderStatus, ord); err != nil {
		return nil, err
	}

	if err = ord.ChangeStatus(cmd.Target(), h.clock()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ord, nil
}

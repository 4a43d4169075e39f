package commands

import (
	"context"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
)

// ChangePaymentStatusCommandHandler handles payment bookkeeping on orders.
// Payments are recorded manually by admins; there is no gateway integration.
type ChangePaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewChangePaymentStatusCommandHandler creates a handler for payment changes.
func NewChangePaymentStatusCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) ChangePaymentStatusCommandHandler {
	return ChangePaymentStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the payment status change and returns the updated order.
func (h *ChangePaymentStatusCommandHandler) Handle(ctx context.Context, cmd ChangePaymentStatusCommand) (*order.Order, error) {
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

	if err = h.policy.AuthorizeOrder(cmd.Actor(), services.ActionChangePayment, ord); err != nil {
		return nil, err
	}

	if err = ord.ChangePayment(cmd.Target()); err != nil {
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

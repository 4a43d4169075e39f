package commands

import (
	"context"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
)

// AssignWriterCommandHandler handles assigning a writer to an order.
type AssignWriterCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewAssignWriterCommandHandler creates a handler for writer assignment.
func NewAssignWriterCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy) AssignWriterCommandHandler {
	return AssignWriterCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the assignment and returns the updated order.
func (h *AssignWriterCommandHandler) Handle(ctx context.Context, cmd AssignWriterCommand) (*order.Order, error) {
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

	if err = h.policy.AuthorizeOrder(cmd.Actor(), services.ActionAssignWriter, ord); err != nil {
		return nil, err
	}

	if err = ord.AssignWriter(cmd.WriterID()); err != nil {
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

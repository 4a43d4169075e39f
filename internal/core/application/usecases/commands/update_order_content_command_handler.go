package commands

import (
	"context"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
)

// UpdateOrderContentCommandHandler handles content edits on an order.
// Customers may edit their own orders while they are still pending; admins
// may edit any order. A page-count change is repriced against the order's
// stored deadline as of the edit, and the new page count and the new total
// are persisted together.
type UpdateOrderContentCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	pricing    services.PricingEngine
	clock      Clock
}

// NewUpdateOrderContentCommandHandler creates a handler for order content edits.
func NewUpdateOrderContentCommandHandler(uowFactory OrderUoWFactory, policy services.AccessPolicy, pricing services.PricingEngine, clock Clock) UpdateOrderContentCommandHandler {
	return UpdateOrderContentCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		pricing:    pricing,
		clock:      clock,
	}
}

// Handle processes the content edit and returns the updated order.
func (h *UpdateOrderContentCommandHandler) Handle(ctx context.Context, cmd UpdateOrderContentCommand) (*order.Order, error) {
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

	if err = h.policy.AuthorizeOrder(cmd.Actor(), services.ActionEditOrderContent, ord); err != nil {
		return nil, err
	}

	reprice := func(pageCount int) (order.Quote, error) {
		days := services.DaysUntilDeadline(ord.Deadline(), h.clock())
		quote, _, quoteErr := h.pricing.Quote(ord.AcademicLevel(), days, pageCount)
		return quote, quoteErr
	}

	if err = ord.ApplyContentEdit(cmd.Edit(), reprice); err != nil {
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

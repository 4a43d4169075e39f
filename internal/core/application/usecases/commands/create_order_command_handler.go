package commands

import (
	"context"
	"errors"

	"scribeassist/internal/core/domain/model/order"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/pkg/errs"
)

// maxNumberAttempts caps order number regeneration on a storage conflict.
// The number carries a millisecond timestamp plus a random tail, so even one
// collision is rare; hitting the cap means something else is wrong.
const maxNumberAttempts = 5

// CreateOrderCommandHandler handles the business logic for placing an order.
// It prices the order from the academic level, the distance to the deadline,
// and the page count, generates the customer-facing order number, and
// persists the new aggregate.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingEngine
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, pricing services.PricingEngine, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		clock:      clock,
	}
}

// Handle processes the order placement command and returns the created
// order. A duplicate order number surfaces as a Conflict from storage; the
// handler regenerates the number and retries the whole transaction, up to
// maxNumberAttempts.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock()
	days := services.DaysUntilDeadline(cmd.Deadline(), now)
	quote, _, err := h.pricing.Quote(cmd.AcademicLevel(), days, cmd.PageCount())
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		newOrder, err := order.NewOrder(order.NewOrderParams{
			ID:            cmd.OrderID(),
			Number:        order.GenerateNumber(now),
			CustomerID:    cmd.Actor().ID(),
			Title:         cmd.Title(),
			Description:   cmd.Description(),
			Subject:       cmd.Subject(),
			AcademicLevel: cmd.AcademicLevel(),
			PaperType:     cmd.PaperType(),
			PageCount:     cmd.PageCount(),
			Words:         cmd.Words(),
			Deadline:      cmd.Deadline(),
			Requirements:  cmd.Requirements(),
			Attachments:   cmd.Attachments(),
			Quote:         quote,
			CreatedAt:     now,
		})
		if err != nil {
			return nil, err
		}

		persisted, err := h.persist(ctx, newOrder)
		if err == nil {
			return persisted, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (h *CreateOrderCommandHandler) persist(ctx context.Context, newOrder *order.Order) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

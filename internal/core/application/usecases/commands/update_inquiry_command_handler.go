package commands

import (
	"context"

	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/services"
)

// UpdateInquiryCommandHandler handles back-office inquiry updates. The first
// status change away from New stamps the first-response time; the aggregate
// owns that rule.
type UpdateInquiryCommandHandler struct {
	uowFactory InquiryUoWFactory
	policy     services.AccessPolicy
	clock      Clock
}

// NewUpdateInquiryCommandHandler creates a handler for inquiry updates.
func NewUpdateInquiryCommandHandler(uowFactory InquiryUoWFactory, policy services.AccessPolicy, clock Clock) UpdateInquiryCommandHandler {
	return UpdateInquiryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle processes the inquiry update and returns the updated inquiry.
func (h *UpdateInquiryCommandHandler) Handle(ctx context.Context, cmd UpdateInquiryCommand) (*inquiry.Inquiry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionManageInquiries); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inquiryRepo := uow.InquiryRepository()
	inq, err := inquiryRepo.Get(ctx, cmd.InquiryID())
	if err != nil {
		return nil, err
	}

	if status := cmd.Status(); status != nil {
		if err = inq.ChangeStatus(*status, h.clock()); err != nil {
			return nil, err
		}
	}
	if priority := cmd.Priority(); priority != nil {
		if err = inq.ChangePriority(*priority); err != nil {
			return nil, err
		}
	}
	if notes := cmd.Notes(); notes != nil {
		inq.SetNotes(*notes)
	}

	if err = inquiryRepo.Update(ctx, inq); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inq, nil
}

package commands

import (
	"context"

	"scribeassist/internal/core/domain/services"
)

// DeleteInquiryCommandHandler handles permanent inquiry removal.
type DeleteInquiryCommandHandler struct {
	uowFactory InquiryUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteInquiryCommandHandler creates a handler for inquiry deletion.
func NewDeleteInquiryCommandHandler(uowFactory InquiryUoWFactory, policy services.AccessPolicy) DeleteInquiryCommandHandler {
	return DeleteInquiryCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the deletion.
func (h *DeleteInquiryCommandHandler) Handle(ctx context.Context, cmd DeleteInquiryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.Authorize(cmd.Actor(), services.ActionManageInquiries); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.InquiryRepository().Delete(ctx, cmd.InquiryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"scribeassist/internal/core/domain/model/inquiry"
)

// CreateInquiryCommandHandler handles contact-form submissions.
type CreateInquiryCommandHandler struct {
	uowFactory InquiryUoWFactory
	clock      Clock
}

// NewCreateInquiryCommandHandler creates a handler for inquiry submission.
func NewCreateInquiryCommandHandler(uowFactory InquiryUoWFactory, clock Clock) CreateInquiryCommandHandler {
	return CreateInquiryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the submission and returns the stored inquiry.
func (h *CreateInquiryCommandHandler) Handle(ctx context.Context, cmd CreateInquiryCommand) (*inquiry.Inquiry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	inq, err := inquiry.NewInquiry(
		cmd.InquiryID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Subject(),
		cmd.Message(),
		cmd.Source(),
		cmd.UserID(),
		h.clock(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InquiryRepository().Add(ctx, inq); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inq, nil
}

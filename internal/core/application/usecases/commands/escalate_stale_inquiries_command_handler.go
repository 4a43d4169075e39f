package commands

import (
	"context"
)

// EscalateStaleInquiriesCommandHandler bumps the priority of inquiries that
// have sat unanswered past the configured age. Escalation is idempotent at
// the top: an inquiry already at Urgent is left alone and not rewritten.
type EscalateStaleInquiriesCommandHandler struct {
	uowFactory InquiryUoWFactory
	clock      Clock
}

// NewEscalateStaleInquiriesCommandHandler creates a handler for the
// escalation sweep.
func NewEscalateStaleInquiriesCommandHandler(uowFactory InquiryUoWFactory, clock Clock) EscalateStaleInquiriesCommandHandler {
	return EscalateStaleInquiriesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle runs the sweep and returns how many inquiries were escalated.
func (h *EscalateStaleInquiriesCommandHandler) Handle(ctx context.Context, cmd EscalateStaleInquiriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.clock().Add(-cmd.MaxAge())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inquiryRepo := uow.InquiryRepository()
	stale, err := inquiryRepo.GetAllNewBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	escalated := 0
	for _, inq := range stale {
		if !inq.Escalate() {
			continue
		}
		if err = inquiryRepo.Update(ctx, inq); err != nil {
			return 0, err
		}
		escalated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return escalated, nil
}

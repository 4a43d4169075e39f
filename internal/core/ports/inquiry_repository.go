package ports

import (
	"context"
	"time"

	"scribeassist/internal/core/domain/model/inquiry"
	"scribeassist/internal/core/domain/model/kernel"
)

// InquiryRepository defines the persistence contract for inquiry aggregates.
type InquiryRepository interface {
	// Add persists a new inquiry.
	Add(ctx context.Context, aggregate *inquiry.Inquiry) error

	// Update persists changes to an existing inquiry.
	Update(ctx context.Context, aggregate *inquiry.Inquiry) error

	// Get retrieves an inquiry by ID, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*inquiry.Inquiry, error)

	// Delete removes an inquiry permanently, or errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllNewBefore retrieves inquiries still in the New status submitted
	// before the cutoff. Used by the escalation job.
	GetAllNewBefore(ctx context.Context, cutoff time.Time) ([]*inquiry.Inquiry, error)
}

// Package ports defines the persistence contracts between the domain layer
// and the infrastructure adapters. Repositories surface errs.ObjectNotFound
// for missing aggregates and errs.Conflict for uniqueness violations, so the
// application layer never sees driver-level errors.
package ports

import (
	"context"

	"scribeassist/internal/core/domain/model/kernel"
	"scribeassist/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A duplicate order number surfaces as an
	// errs.ConflictError; callers regenerate the number and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. All changed fields are
	// written in one statement, so a page-count change and its recomputed
	// price land atomically.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order permanently, or errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}

package ports

import (
	"context"

	"scribeassist/internal/core/domain/model/account"
	"scribeassist/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user. A duplicate email surfaces as an
	// errs.ConflictError.
	Add(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by ID, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by login address, or
	// errs.ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or command,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Client code manages the
// transaction lifecycle explicitly; repositories obtained from a unit of
// work run inside its transaction once Begin has been called.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back after a
	// successful commit is a no-op, which makes deferred rollbacks safe.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the transaction.
	OrderRepository() OrderRepository

	// InquiryRepository returns an InquiryRepository bound to the transaction.
	InquiryRepository() InquiryRepository

	// PostRepository returns a PostRepository bound to the transaction.
	PostRepository() PostRepository

	// UserRepository returns a UserRepository bound to the transaction.
	UserRepository() UserRepository
}

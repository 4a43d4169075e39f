// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"scribeassist/internal/core/ports"
)

// Clock supplies the current time to handlers that stamp timestamps or
// price against a deadline. Injected so tests can pin it.
type Clock func() time.Time

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InquiryRepoFactory provides access to the inquiry repository within a transaction.
	InquiryRepoFactory interface {
		InquiryRepository() ports.InquiryRepository
	}

	// PostRepoFactory provides access to the post repository within a transaction.
	PostRepoFactory interface {
		PostRepository() ports.PostRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InquiryUoW manages transactions for inquiry-only operations.
	InquiryUoW interface {
		TxManager
		InquiryRepoFactory
	}

	// InquiryUoWFactory creates new inquiry unit of work instances.
	InquiryUoWFactory interface {
		Create() InquiryUoW
	}

	// PostUoW manages transactions for post-only operations.
	PostUoW interface {
		TxManager
		PostRepoFactory
	}

	// PostUoWFactory creates new post unit of work instances.
	PostUoWFactory interface {
		Create() PostUoW
	}

	// UserUoW manages transactions for account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)

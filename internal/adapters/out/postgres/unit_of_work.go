// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work is a business transaction boundary: repositories
// obtained from it run inside its transaction once Begin has been called, and
// all changes either commit together or roll back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, ord); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create call returns a fresh instance with its own transaction state, so
// concurrent requests never share a transaction.
//
// The database must be opened with gorm.Config.TranslateError enabled:
// repositories map gorm.ErrDuplicatedKey to errs.ConflictError, which the
// application layer relies on for order-number and slug retry loops.
package postgres

import (
	"context"

	"scribeassist/internal/adapters/out/postgres/inquiryrepo"
	"scribeassist/internal/adapters/out/postgres/orderrepo"
	"scribeassist/internal/adapters/out/postgres/postrepo"
	"scribeassist/internal/adapters/out/postgres/userrepo"
	"scribeassist/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// database connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a single database transaction across the
// repositories of all aggregates. Repositories requested before Begin run
// directly on the main connection.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin again on an instance with an
// active transaction is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused
// afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Rolling back when no transaction is
// active, such as after a successful commit, is a no-op, which makes
// deferred rollbacks safe.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// InquiryRepository returns an inquiry repository bound to the current
// transaction.
func (uow *GormUnitOfWork) InquiryRepository() ports.InquiryRepository {
	return inquiryrepo.NewGormInquiryRepository(uow.conn())
}

// PostRepository returns a post repository bound to the current transaction.
func (uow *GormUnitOfWork) PostRepository() ports.PostRepository {
	return postrepo.NewGormPostRepository(uow.conn())
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

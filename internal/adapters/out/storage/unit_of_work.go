// Package storage provides the GORM-backed persistence adapters of the order service:
// database bootstrap (SQLite file or PostgreSQL) and the Unit of Work that scopes
// the two-table order writes in a single transaction.
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	id, err := uow.OrderRepository().Add(ctx, aggregate)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and is
// safe to ignore, which is what makes the deferred Rollback above work.
//
// Concurrency Considerations:
//   - The *gorm.DB handed to the factory is a connection pool shared by all requests
//   - Each UnitOfWork instance owns at most one transaction and must not be shared
//     between goroutines
//   - Concurrent writes to the same order are serialized only by the database;
//     the last writer wins
package storage

import (
	"context"
	"log/slog"

	"skate/internal/adapters/out/storage/orderrepo"
	"skate/internal/core/ports"
	"skate/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances
// and makes sure the order tables exist.
//
// Example:
//
//	db, err := storage.Open(ctx, cfg, logger)
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := storage.NewGormUnitOfWorkFactory(db, logger)
func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	orderrepo.InitSchema(context.Background(), db, logger.With("component", "schema"))
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work; call Begin before writing.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction for one business operation.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. A second Begin on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStorageFailureError("begin transaction", tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit makes the header and item writes durable and closes the transaction.
// Without an open transaction it returns gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewStorageFailureError("commit transaction", err)
	}
	return nil
}

// Rollback drops every write since Begin. Without an open transaction it
// returns gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns the order store bound to the open transaction, or to
// the shared pool before Begin and after Commit/Rollback.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db)
}

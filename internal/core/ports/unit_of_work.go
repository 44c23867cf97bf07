package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes the header and item writes of one order in a transaction.
type UnitOfWork interface {
	// Begin opens the transaction.
	Begin(ctx context.Context) error

	// Commit persists the writes. It fails when nothing is open.
	Commit(ctx context.Context) error

	// Rollback discards the writes. It fails when nothing is open, so a
	// deferred Rollback after Commit can ignore its error.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction,
	// or to the shared connection pool when no transaction is active.
	OrderRepository() OrderRepository
}

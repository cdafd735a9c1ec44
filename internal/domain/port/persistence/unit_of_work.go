package persistence

import (
	"context"
)

// UnitOfWork coordinates one database transaction across repositories
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Do runs fn inside a transaction, committing on nil and rolling back otherwise.
	// Attempts rolled back by the database's concurrency control are run again.
	Do(ctx context.Context, fn func(txCtx context.Context) error) error

	// Repositories bound to the transaction carried by ctx, or to the plain
	// connection when ctx has none.
	GetAccountRepository(ctx context.Context) AccountRepository
	GetTransactionRepository(ctx context.Context) TransactionRepository
	GetBlockEventRepository(ctx context.Context) BlockEventRepository
	GetOutboxRepository(ctx context.Context) OutboxRepository
}

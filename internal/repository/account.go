package repository

import (
	"context"

	"ledgerapi/internal/model"
)

// AccountRepository defines data access for accounts and their ledger entries
// using SQL queries only. No business logic here — strictly persistence operations.
type AccountRepository interface {
	// Create inserts a new account record.
	// The caller provides required fields (ID, CreatedAt) per the schema defaults.
	// Returns the stored account (may include values set by the DB).
	Create(ctx context.Context, acc *model.Account) (*model.Account, error)

	// FindByID returns an account by its ID.
	FindByID(ctx context.Context, id string) (*model.Account, error)

	// Apply records a ledger entry and moves the account balance atomically.
	// The balance update is guarded so it can never go below zero: when the
	// account is missing or the guarded update matches no row, sql.ErrNoRows
	// surfaces and nothing is written.
	Apply(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)

	// ListTransactions returns a page of ledger entries for an account,
	// newest first, plus the total row count for the account.
	ListTransactions(ctx context.Context, accountID string, pq PageQuery) (*PageResult[model.Transaction], error)
}

package repository

import (
	"context"

	"ledgerapi/internal/model"
)

// StatementRepository persists metadata of statement exports stored in
// object storage.
type StatementRepository interface {
	// Create inserts a statement export record.
	Create(ctx context.Context, exp *model.StatementExport) (*model.StatementExport, error)

	// ListByAccount returns exports for an account, newest first.
	ListByAccount(ctx context.Context, accountID string, pq PageQuery) (*PageResult[model.StatementExport], error)
}

package postgres

import (
	"context"
	"database/sql"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"
)

// StatementPostgres is a PostgreSQL implementation of repository.StatementRepository.
type StatementPostgres struct {
	db *sql.DB
}

// NewStatementPostgres creates a new StatementPostgres repository.
func NewStatementPostgres(db *sql.DB) *StatementPostgres {
	return &StatementPostgres{db: db}
}

var _ repository.StatementRepository = (*StatementPostgres)(nil)

// Create inserts a statement export row and returns the stored record.
func (r *StatementPostgres) Create(ctx context.Context, exp *model.StatementExport) (*model.StatementExport, error) {
	const q = `
		INSERT INTO statement_exports (id, account_id, storage_path, size, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, account_id, storage_path, size, created_at
	`
	var out model.StatementExport
	if err := r.db.QueryRowContext(ctx, q,
		exp.ID,
		exp.AccountID,
		exp.StoragePath,
		exp.Size,
		exp.CreatedAt,
	).Scan(
		&out.ID,
		&out.AccountID,
		&out.StoragePath,
		&out.Size,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByAccount returns exports for an account, newest first, with a total count.
func (r *StatementPostgres) ListByAccount(ctx context.Context, accountID string, pq repository.PageQuery) (*repository.PageResult[model.StatementExport], error) {
	const qCount = `SELECT COUNT(*) FROM statement_exports WHERE account_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, accountID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, account_id, storage_path, size, created_at
		FROM statement_exports
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, accountID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.StatementExport, 0)
	for rows.Next() {
		var e model.StatementExport
		if err := rows.Scan(
			&e.ID,
			&e.AccountID,
			&e.StoragePath,
			&e.Size,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.StatementExport]{
		Items: items,
		Total: total,
	}, nil
}

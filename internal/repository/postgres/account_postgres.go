package postgres

import (
	"context"
	"database/sql"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"
)

// AccountPostgres is a PostgreSQL implementation of repository.AccountRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type AccountPostgres struct {
	db *sql.DB
}

// NewAccountPostgres creates a new AccountPostgres repository.
func NewAccountPostgres(db *sql.DB) *AccountPostgres {
	return &AccountPostgres{db: db}
}

var _ repository.AccountRepository = (*AccountPostgres)(nil)

// Create inserts a new account row and returns the stored record.
func (r *AccountPostgres) Create(ctx context.Context, acc *model.Account) (*model.Account, error) {
	const q = `
		INSERT INTO accounts (id, owner_name, balance, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, owner_name, balance, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		acc.ID,
		acc.OwnerName,
		acc.Balance,
		acc.CreatedAt,
	)
	var out model.Account
	if err := row.Scan(
		&out.ID,
		&out.OwnerName,
		&out.Balance,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single account by its ID.
func (r *AccountPostgres) FindByID(ctx context.Context, id string) (*model.Account, error) {
	const q = `
		SELECT id, owner_name, balance, created_at
		FROM accounts
		WHERE id = $1
	`
	var a model.Account
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID,
		&a.OwnerName,
		&a.Balance,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Apply moves the balance and records the ledger entry in one transaction.
// The UPDATE is guarded so the balance cannot go negative; a guarded update
// matching no row surfaces as sql.ErrNoRows and rolls everything back.
func (r *AccountPostgres) Apply(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	delta := txn.Amount
	if txn.Kind == model.TxnWithdrawal {
		delta = -delta
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const qUpdate = `
		UPDATE accounts
		SET balance = balance + $1
		WHERE id = $2 AND balance + $1 >= 0
		RETURNING balance
	`
	var balanceAfter int64
	if err := tx.QueryRowContext(ctx, qUpdate, delta, txn.AccountID).Scan(&balanceAfter); err != nil {
		return nil, err
	}

	const qInsert = `
		INSERT INTO transactions (id, account_id, kind, amount, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, account_id, kind, amount, balance_after, created_at
	`
	var out model.Transaction
	if err := tx.QueryRowContext(ctx, qInsert,
		txn.ID,
		txn.AccountID,
		txn.Kind,
		txn.Amount,
		balanceAfter,
		txn.CreatedAt,
	).Scan(
		&out.ID,
		&out.AccountID,
		&out.Kind,
		&out.Amount,
		&out.BalanceAfter,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTransactions returns ledger entries using LIMIT/OFFSET pagination and a
// total count for the account.
func (r *AccountPostgres) ListTransactions(ctx context.Context, accountID string, pq repository.PageQuery) (*repository.PageResult[model.Transaction], error) {
	const qCount = `SELECT COUNT(*) FROM transactions WHERE account_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, accountID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, account_id, kind, amount, balance_after, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, accountID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Transaction, 0)
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(
			&t.ID,
			&t.AccountID,
			&t.Kind,
			&t.Amount,
			&t.BalanceAfter,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Transaction]{
		Items: items,
		Total: total,
	}, nil
}

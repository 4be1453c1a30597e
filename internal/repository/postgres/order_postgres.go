package postgres

import (
	"context"
	"database/sql"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"
)

// OrderPostgres is a PostgreSQL implementation of repository.OrderRepository.
type OrderPostgres struct {
	db *sql.DB
}

// NewOrderPostgres creates a new OrderPostgres repository.
func NewOrderPostgres(db *sql.DB) *OrderPostgres {
	return &OrderPostgres{db: db}
}

var _ repository.OrderRepository = (*OrderPostgres)(nil)

// Create inserts a new order row with a zero running total.
func (r *OrderPostgres) Create(ctx context.Context, o *model.Order) (*model.Order, error) {
	const q = `
		INSERT INTO orders (id, customer_name, total, created_at)
		VALUES ($1, $2, 0, $3)
		RETURNING id, customer_name, total, created_at
	`
	var out model.Order
	if err := r.db.QueryRowContext(ctx, q,
		o.ID,
		o.CustomerName,
		o.CreatedAt,
	).Scan(
		&out.ID,
		&out.CustomerName,
		&out.Total,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single order row by its ID.
func (r *OrderPostgres) FindByID(ctx context.Context, id string) (*model.Order, error) {
	const q = `
		SELECT id, customer_name, total, created_at
		FROM orders
		WHERE id = $1
	`
	var o model.Order
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&o.ID,
		&o.CustomerName,
		&o.Total,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns orders using LIMIT/OFFSET pagination and a total count.
func (r *OrderPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Order], error) {
	const qCount = `SELECT COUNT(*) FROM orders`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, customer_name, total, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.Total,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Order]{
		Items: items,
		Total: total,
	}, nil
}

// AddItem bumps the order's running total and inserts the line item in one
// transaction. The total update runs first so a missing order surfaces as
// sql.ErrNoRows before anything is written.
func (r *OrderPostgres) AddItem(ctx context.Context, item *model.OrderItem) (*model.OrderItem, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	const qUpdate = `
		UPDATE orders
		SET total = total + $1
		WHERE id = $2
		RETURNING total
	`
	var newTotal int64
	if err := tx.QueryRowContext(ctx, qUpdate, item.LineTotal(), item.OrderID).Scan(&newTotal); err != nil {
		return nil, 0, err
	}

	const qInsert = `
		INSERT INTO order_items (id, order_id, name, unit_price, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, order_id, name, unit_price, quantity, created_at
	`
	var out model.OrderItem
	if err := tx.QueryRowContext(ctx, qInsert,
		item.ID,
		item.OrderID,
		item.Name,
		item.UnitPrice,
		item.Quantity,
		item.CreatedAt,
	).Scan(
		&out.ID,
		&out.OrderID,
		&out.Name,
		&out.UnitPrice,
		&out.Quantity,
		&out.CreatedAt,
	); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}
	return &out, newTotal, nil
}

// ListItems returns all line items of an order in insertion order.
func (r *OrderPostgres) ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	const q = `
		SELECT id, order_id, name, unit_price, quantity, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderItem, 0)
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(
			&it.ID,
			&it.OrderID,
			&it.Name,
			&it.UnitPrice,
			&it.Quantity,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

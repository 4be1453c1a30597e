package repository

import (
	"context"

	"ledgerapi/internal/model"
)

// OrderRepository defines data access for orders and their line items.
type OrderRepository interface {
	// Create inserts a new order record with a zero total.
	Create(ctx context.Context, o *model.Order) (*model.Order, error)

	// FindByID returns the order row (items are fetched separately).
	FindByID(ctx context.Context, id string) (*model.Order, error)

	// List returns a paginated list of orders and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Order], error)

	// AddItem inserts a line item and increments the order's running total in
	// the same database transaction. Returns the stored item and the new total.
	// sql.ErrNoRows surfaces when the order does not exist.
	AddItem(ctx context.Context, item *model.OrderItem) (*model.OrderItem, int64, error)

	// ListItems returns all line items of an order in insertion order.
	ListItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
}

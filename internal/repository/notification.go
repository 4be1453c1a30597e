package repository

import (
	"context"

	"ledgerapi/internal/model"
)

// NotificationRepository persists dispatched notifications.
type NotificationRepository interface {
	// Create inserts a dispatched notification with its rendered payload.
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)

	// List returns a paginated list of notifications, newest first.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Notification], error)
}

package postgres

import (
	"context"
	"database/sql"

	"ledgerapi/internal/model"
	"ledgerapi/internal/repository"
)

// NotificationPostgres is a PostgreSQL implementation of repository.NotificationRepository.
type NotificationPostgres struct {
	db *sql.DB
}

// NewNotificationPostgres creates a new NotificationPostgres repository.
func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

// Create inserts a dispatched notification row and returns the stored record.
func (r *NotificationPostgres) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const q = `
		INSERT INTO notifications (id, channel, recipient, subject, body, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, channel, recipient, subject, body, payload, created_at
	`
	var out model.Notification
	if err := r.db.QueryRowContext(ctx, q,
		n.ID,
		n.Channel,
		n.Recipient,
		n.Subject,
		n.Body,
		n.Payload,
		n.CreatedAt,
	).Scan(
		&out.ID,
		&out.Channel,
		&out.Recipient,
		&out.Subject,
		&out.Body,
		&out.Payload,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns notifications using LIMIT/OFFSET pagination and a total count.
func (r *NotificationPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Notification], error) {
	const qCount = `SELECT COUNT(*) FROM notifications`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, channel, recipient, subject, body, payload, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(
			&n.ID,
			&n.Channel,
			&n.Recipient,
			&n.Subject,
			&n.Body,
			&n.Payload,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Notification]{
		Items: items,
		Total: total,
	}, nil
}

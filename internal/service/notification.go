package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ledgerapi/internal/model"
	"ledgerapi/internal/notify"
	"ledgerapi/internal/repository"
)

var ErrRecipientRequired = errors.New("recipient is required")

// NotificationListResult is the service-level DTO for paginated notifications.
type NotificationListResult struct {
	Items []model.Notification `json:"data"`
	Total int                  `json:"total"`
}

// NotificationService dispatches messages over a channel-selected notifier and
// persists what was sent.
type NotificationService interface {
	// Send selects the notifier for the channel, delivers the message, and
	// stores the rendered payload. Unknown channels fail with
	// notify.ErrUnknownChannel.
	Send(ctx context.Context, channel, recipient, subject, body string) (*model.Notification, error)

	// List returns notifications using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*NotificationListResult, error)
}

// notificationService is a concrete implementation of NotificationService.
type notificationService struct {
	notifiers map[string]notify.Notifier
	repo      repository.NotificationRepository
}

// NewNotificationService constructs a NotificationService over the given
// notifiers. Each notifier is registered under its own channel name.
func NewNotificationService(repo repository.NotificationRepository, notifiers ...notify.Notifier) NotificationService {
	reg := make(map[string]notify.Notifier, len(notifiers))
	for _, n := range notifiers {
		reg[n.Channel()] = n
	}
	return &notificationService{notifiers: reg, repo: repo}
}

func (s *notificationService) Send(ctx context.Context, channel, recipient, subject, body string) (*model.Notification, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return nil, ErrRecipientRequired
	}

	n, ok := s.notifiers[channel]
	if !ok {
		return nil, fmt.Errorf("%w: %q", notify.ErrUnknownChannel, channel)
	}

	payload, err := n.Send(ctx, notify.Message{Recipient: recipient, Subject: subject, Body: body})
	if err != nil {
		return nil, fmt.Errorf("send via %s: %w", channel, err)
	}

	record := &model.Notification{
		ID:        uuid.New().String(),
		Channel:   channel,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, record)
	if err != nil {
		// The message is already out; only the record failed.
		return nil, fmt.Errorf("save notification: %w", err)
	}
	return stored, nil
}

// List returns paginated notifications without exposing repository types.
func (s *notificationService) List(ctx context.Context, limit, offset int) (*NotificationListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &NotificationListResult{Items: res.Items, Total: res.Total}, nil
}

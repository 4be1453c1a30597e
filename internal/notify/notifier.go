package notify

import (
	"context"
	"errors"
)

// Package notify contains the channel implementations used to deliver
// notifications. Each notifier renders the message in its own wire shape and
// delivers it; the rendered payload is returned so callers can persist it.

// ErrUnknownChannel is returned when no notifier is registered for a channel.
var ErrUnknownChannel = errors.New("unknown notification channel")

// Message is the channel-agnostic content of a notification.
type Message struct {
	Recipient string
	Subject   string
	Body      string
}

// Notifier delivers a message over one channel.
type Notifier interface {
	// Channel returns the channel name this notifier serves (e.g. "email").
	Channel() string

	// Send renders and delivers the message, returning the rendered payload.
	Send(ctx context.Context, msg Message) (string, error)
}

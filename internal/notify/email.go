package notify

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ledgerapi/internal/model"
)

// EmailNotifier renders messages as an RFC-2822-style header block with the
// body separated by a blank line.
type EmailNotifier struct {
	from string
	out  io.Writer
}

// NewEmail creates an email notifier. out may be nil to log deliveries to stdout.
func NewEmail(from string, out io.Writer) *EmailNotifier {
	if from == "" {
		from = "no-reply@ledgerapi.local"
	}
	return &EmailNotifier{from: from, out: out}
}

var _ Notifier = (*EmailNotifier)(nil)

func (n *EmailNotifier) Channel() string { return model.ChannelEmail }

// Send renders the message as an email and delivers it.
func (n *EmailNotifier) Send(ctx context.Context, msg Message) (string, error) {
	if msg.Recipient == "" {
		return "", errors.New("email recipient is required")
	}
	payload := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.from, msg.Recipient, msg.Subject, msg.Body)
	if err := deliver(n.out, n.Channel(), msg.Recipient, payload); err != nil {
		return "", fmt.Errorf("deliver email: %w", err)
	}
	return payload, nil
}

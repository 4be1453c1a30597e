package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"ledgerapi/internal/model"
)

// PushNotifier renders messages as the compact JSON payload a push gateway
// would accept.
type PushNotifier struct {
	out io.Writer
}

// NewPush creates a push notifier. out may be nil to log deliveries to stdout.
func NewPush(out io.Writer) *PushNotifier {
	return &PushNotifier{out: out}
}

var _ Notifier = (*PushNotifier)(nil)

func (n *PushNotifier) Channel() string { return model.ChannelPush }

// Send renders the message as a push payload and delivers it.
func (n *PushNotifier) Send(ctx context.Context, msg Message) (string, error) {
	if msg.Recipient == "" {
		return "", errors.New("push recipient is required")
	}
	b, err := json.Marshal(map[string]string{
		"to":    msg.Recipient,
		"title": msg.Subject,
		"body":  msg.Body,
	})
	if err != nil {
		return "", fmt.Errorf("encode push payload: %w", err)
	}
	payload := string(b)
	if err := deliver(n.out, n.Channel(), msg.Recipient, payload); err != nil {
		return "", fmt.Errorf("deliver push: %w", err)
	}
	return payload, nil
}

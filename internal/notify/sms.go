package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ledgerapi/internal/model"
)

// smsMaxRunes is the single-segment GSM message length.
const smsMaxRunes = 160

// SMSNotifier renders messages as a single line clipped to one SMS segment.
type SMSNotifier struct {
	out io.Writer
}

// NewSMS creates an SMS notifier. out may be nil to log deliveries to stdout.
func NewSMS(out io.Writer) *SMSNotifier {
	return &SMSNotifier{out: out}
}

var _ Notifier = (*SMSNotifier)(nil)

func (n *SMSNotifier) Channel() string { return model.ChannelSMS }

// Send renders the message as one SMS segment and delivers it.
func (n *SMSNotifier) Send(ctx context.Context, msg Message) (string, error) {
	if msg.Recipient == "" {
		return "", errors.New("sms recipient is required")
	}
	text := msg.Body
	if msg.Subject != "" {
		text = msg.Subject + ": " + text
	}
	text = strings.Join(strings.Fields(text), " ")
	if runes := []rune(text); len(runes) > smsMaxRunes {
		text = string(runes[:smsMaxRunes-3]) + "..."
	}
	payload := fmt.Sprintf("SMS %s %s", msg.Recipient, text)
	if err := deliver(n.out, n.Channel(), msg.Recipient, payload); err != nil {
		return "", fmt.Errorf("deliver sms: %w", err)
	}
	return payload, nil
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	n := NewEmail("billing@example.com", &buf)
	ctx := context.Background()

	payload, err := n.Send(ctx, Message{
		Recipient: "alice@example.com",
		Subject:   "Deposit receipt",
		Body:      "Your deposit of 500 was recorded.",
	})

	require.NoError(t, err)
	assert.Contains(t, payload, "From: billing@example.com")
	assert.Contains(t, payload, "To: alice@example.com")
	assert.Contains(t, payload, "Subject: Deposit receipt")
	assert.Contains(t, payload, "\r\n\r\nYour deposit of 500 was recorded.")

	var logLine map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
	assert.Equal(t, "notification_delivered", logLine["msg"])
	assert.Equal(t, "email", logLine["channel"])
	assert.Equal(t, "alice@example.com", logLine["recipient"])
}

func TestEmailNotifier_Send_NoRecipient(t *testing.T) {
	n := NewEmail("", &bytes.Buffer{})
	_, err := n.Send(context.Background(), Message{Subject: "x"})
	assert.Error(t, err)
}

func TestSMSNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	n := NewSMS(&buf)
	ctx := context.Background()

	t.Run("joins subject and body on one line", func(t *testing.T) {
		payload, err := n.Send(ctx, Message{
			Recipient: "+15550100",
			Subject:   "Withdrawal",
			Body:      "200 withdrawn,\nnew balance 1300",
		})
		require.NoError(t, err)
		assert.Equal(t, "SMS +15550100 Withdrawal: 200 withdrawn, new balance 1300", payload)
	})

	t.Run("clips to a single segment", func(t *testing.T) {
		payload, err := n.Send(ctx, Message{
			Recipient: "+15550100",
			Body:      strings.Repeat("a", 400),
		})
		require.NoError(t, err)
		text := strings.TrimPrefix(payload, "SMS +15550100 ")
		assert.Len(t, []rune(text), smsMaxRunes)
		assert.True(t, strings.HasSuffix(text, "..."))
	})
}

func TestPushNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	n := NewPush(&buf)

	payload, err := n.Send(context.Background(), Message{
		Recipient: "device-token-1",
		Subject:   "Order archived",
		Body:      "Total: 50500",
	})

	require.NoError(t, err)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, "device-token-1", decoded["to"])
	assert.Equal(t, "Order archived", decoded["title"])
	assert.Equal(t, "Total: 50500", decoded["body"])
}

// The same message rendered by two notifiers must produce two different
// payloads; callers select behavior purely by channel.
func TestNotifiers_DistinctPayloads(t *testing.T) {
	ctx := context.Background()
	msg := Message{Recipient: "r", Subject: "s", Body: "b"}

	notifiers := []Notifier{
		NewEmail("", &bytes.Buffer{}),
		NewSMS(&bytes.Buffer{}),
		NewPush(&bytes.Buffer{}),
	}

	seen := map[string]string{}
	for _, n := range notifiers {
		payload, err := n.Send(ctx, msg)
		require.NoError(t, err)
		for ch, other := range seen {
			assert.NotEqual(t, other, payload, "channels %s and %s rendered identically", ch, n.Channel())
		}
		seen[n.Channel()] = payload
	}
	assert.Len(t, seen, 3)
}

package notify

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// deliver writes one JSON delivery record per line to w.
// Real transport backends (SMTP, SMS gateways, APNs) would replace this; the
// record shape matches the service's request log lines.
func deliver(w io.Writer, channel, recipient, payload string) error {
	if w == nil {
		w = os.Stdout
	}
	return json.NewEncoder(w).Encode(map[string]any{
		"ts":        time.Now().UTC().Format(time.RFC3339Nano),
		"level":     "info",
		"msg":       "notification_delivered",
		"channel":   channel,
		"recipient": recipient,
		"bytes":     len(payload),
	})
}

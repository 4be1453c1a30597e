package model

import "time"

// Notification channels supported by the dispatcher.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
)

// Notification is a dispatched message and its channel-rendered payload.
// Payload holds the exact text produced by the notifier that delivered it.
type Notification struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// Package notify delivers user-facing notifications. The reminder
// scheduler only depends on the Sender interface; whether anything shows
// up on a device is the sender's problem (denied permission or a stale
// device token means the notification silently never appears).
package notify

import "context"

// Notification is a single user-facing message.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string
}

// Sender delivers a notification to the configured device.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

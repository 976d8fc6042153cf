package notification

import "context"

// Message is one outbound notification. HTMLBody takes precedence over
// TextBody when both are set.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender delivers notifications. The booking service treats delivery as
// best-effort: a send failure is logged and never surfaced to the caller.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

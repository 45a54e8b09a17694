// Package notify provides the outbound notification channel used to
// escalate captured leads and unanswered questions.
package notify

import "context"

// Notifier sends a single text message to an external channel.
// Fire-and-forget: callers do not consume an acknowledgment.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Noop discards notifications. Useful when no channel is configured.
type Noop struct{}

// Notify discards the message.
func (Noop) Notify(context.Context, string) error { return nil }

package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/gregdel/pushover"
)

// Pushover sends notifications through the Pushover API.
type Pushover struct {
	app       *pushover.Pushover
	recipient *pushover.Recipient
}

// NewPushover creates a Pushover notifier from an application token and a
// user key.
func NewPushover(token, userKey string) *Pushover {
	return &Pushover{
		app:       pushover.New(token),
		recipient: pushover.NewRecipient(userKey),
	}
}

// NewPushoverFromEnv creates a Pushover notifier from PUSHOVER_TOKEN and
// PUSHOVER_USER. Returns an error when either is unset.
func NewPushoverFromEnv() (*Pushover, error) {
	token := os.Getenv("PUSHOVER_TOKEN")
	userKey := os.Getenv("PUSHOVER_USER")
	if token == "" || userKey == "" {
		return nil, fmt.Errorf("pushover: PUSHOVER_TOKEN and PUSHOVER_USER must be set")
	}
	return NewPushover(token, userKey), nil
}

// Notify sends a single message. The pushover client has no context
// support, so cancellation is checked before the send.
func (p *Pushover) Notify(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := p.app.SendMessage(pushover.NewMessage(message), p.recipient); err != nil {
		return fmt.Errorf("pushover: send failed: %w", err)
	}
	return nil
}

// Verify implementations
var (
	_ Notifier = (*Pushover)(nil)
	_ Notifier = Noop{}
)

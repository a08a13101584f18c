package contract

import "context"

// Notifier delivers text to a Discord incoming webhook.
//
// With wait=true the call blocks for Discord's confirmation and returns the
// created message id, or an error matching domain.ErrDeliveryFailed.
// With wait=false failures are logged by the implementation and never returned.
type Notifier interface {
	Send(ctx context.Context, webhookURL, content string, wait bool) (string, error)
}

// EventPublisher announces automation state changes to interested listeners.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

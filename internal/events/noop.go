package events

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// NoopPublisher drops every event. It is used when no bus is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(_ context.Context, subject string, _ any) error {
	log.WithField("subject", subject).Trace("Event bus disabled, dropping event")
	return nil
}

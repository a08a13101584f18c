package events

import (
	"context"
	"testing"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ contract.EventPublisher = (*NATSPublisher)(nil)
	_ contract.EventPublisher = NoopPublisher{}
)

func TestNoopPublisher_Publish(t *testing.T) {
	err := NoopPublisher{}.Publish(context.Background(), entity.SubjectPlannedSent, entity.PlannedSentEvent{MessageID: 1})
	assert.NoError(t, err)
}

func TestNATSPublisher_PublishWithoutConnection(t *testing.T) {
	p := NewNATSPublisher("nats://127.0.0.1:4222")

	err := p.Publish(context.Background(), entity.SubjectAktenAssigned, entity.AktenAssignedEvent{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")

	// closing an unconnected publisher is a no-op
	p.Close()
}

func TestNATSPublisher_ConnectFailure(t *testing.T) {
	p := NewNATSPublisher("nats://127.0.0.1:1")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err := p.Connect(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

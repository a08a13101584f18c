// Package events publishes automation state changes to a message bus.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// NATSPublisher publishes JSON encoded events on core NATS subjects.
type NATSPublisher struct {
	servers              string
	nc                   *nats.Conn
	mu                   sync.RWMutex
	reconnectDelay       time.Duration
	maxReconnectAttempts int
}

func NewNATSPublisher(servers string) *NATSPublisher {
	return &NATSPublisher{
		servers:              servers,
		reconnectDelay:       2 * time.Second,
		maxReconnectAttempts: 10,
	}
}

// Connect establishes the connection to the NATS servers.
func (p *NATSPublisher) Connect(ctx context.Context) error {
	opts := []nats.Option{
		nats.Name("gm-automation"),
		nats.MaxReconnects(p.maxReconnectAttempts),
		nats.ReconnectWait(p.reconnectDelay),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Error("NATS disconnected with error")
			} else {
				log.Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected")
		}),
	}
	if deadline, ok := ctx.Deadline(); ok {
		opts = append(opts, nats.Timeout(time.Until(deadline)))
	}

	nc, err := nats.Connect(p.servers, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}

	p.mu.Lock()
	p.nc = nc
	p.mu.Unlock()

	log.WithField("servers", p.servers).Info("Connected to NATS")
	return nil
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	p.mu.RLock()
	nc := p.nc
	p.mu.RUnlock()

	if nc == nil {
		return fmt.Errorf("not connected to NATS")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event for subject %s: %w", subject, err)
	}

	if err := nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message to subject %s: %w", subject, err)
	}

	log.WithFields(log.Fields{
		"subject": subject,
		"size":    len(data),
	}).Debug("Published message to NATS")
	return nil
}

// Close flushes pending events and closes the connection.
func (p *NATSPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.nc == nil {
		return
	}
	if err := p.nc.Flush(); err != nil {
		log.WithError(err).Warn("Failed to flush NATS connection")
	}
	p.nc.Close()
	p.nc = nil
}

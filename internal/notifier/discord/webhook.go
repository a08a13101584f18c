// Package discord delivers automation messages through Discord incoming webhooks.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/galactic-marines/gm-automation/internal/domain"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const maxErrorBody = 2048

// Config controls the outbound webhook client.
type Config struct {
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	UserAgent     string
}

// Notifier posts messages to Discord webhooks. It is safe for concurrent use.
type Notifier struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func New(cfg Config) *Notifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "gm-automation (https://github.com/galactic-marines/gm-automation, 1.0)"
	}

	return &Notifier{
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(limit, cfg.Burst),
		userAgent: cfg.UserAgent,
	}
}

// Send posts content to webhookURL. User and role mentions are always allowed
// explicitly because webhooks otherwise depend on server defaults.
//
// With wait=true Discord is asked to confirm the message and its id is
// returned; a rejected request yields a *domain.DeliveryError. With wait=false
// any failure is logged and Send returns "", nil.
func (n *Notifier) Send(ctx context.Context, webhookURL, content string, wait bool) (string, error) {
	id, err := n.post(ctx, webhookURL, content, wait)
	if err != nil && !wait {
		log.WithField("webhook", redact(webhookURL)).Warnf("Best-effort webhook delivery failed: %v", err)
		return "", nil
	}
	return id, err
}

func (n *Notifier) post(ctx context.Context, webhookURL, content string, wait bool) (string, error) {
	target, err := url.Parse(webhookURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid webhook url: %v", domain.ErrDeliveryFailed, err)
	}
	if wait {
		q := target.Query()
		q.Set("wait", "true")
		target.RawQuery = q.Encode()
	}

	payload, err := json.Marshal(&discordgo.WebhookParams{
		Content: content,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{
				discordgo.AllowedMentionTypeUsers,
				discordgo.AllowedMentionTypeRoles,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", domain.ErrDeliveryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &domain.DeliveryError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !wait {
		return "", nil
	}

	var msg discordgo.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return "", fmt.Errorf("%w: failed to decode confirmation: %v", domain.ErrDeliveryFailed, err)
	}
	return msg.ID, nil
}

// redact hides the webhook token from logs.
func redact(webhookURL string) string {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return "invalid-url"
	}
	return u.Scheme + "://" + u.Host
}

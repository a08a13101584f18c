package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	log "github.com/sirupsen/logrus"
)

type plannedMessageService struct {
	dm       contract.DataManager
	notifier contract.Notifier
	events   contract.EventPublisher
	clock    func() time.Time
}

func newPlannedMessage(dm contract.DataManager, notifier contract.Notifier, events contract.EventPublisher) *plannedMessageService {
	return &plannedMessageService{
		dm:       dm,
		notifier: notifier,
		events:   events,
		clock:    time.Now,
	}
}

func (s *plannedMessageService) List(ctx context.Context) ([]*entity.PlannedMessage, error) {
	messages, err := s.dm.PlannedMessage().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned messages: %w", err)
	}
	return messages, nil
}

func (s *plannedMessageService) Get(ctx context.Context, id int64) (*entity.PlannedMessage, error) {
	msg, err := s.dm.PlannedMessage().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get planned message: %w", err)
	}
	if msg == nil {
		return nil, fmt.Errorf("planned message %d: %w", id, domain.ErrNotFound)
	}
	return msg, nil
}

func (s *plannedMessageService) Create(ctx context.Context, msg *entity.PlannedMessage) error {
	msg.LastRunAt = nil
	if err := s.prepare(msg, s.clock()); err != nil {
		return err
	}

	if err := s.dm.PlannedMessage().Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to create planned message: %w", err)
	}
	return nil
}

func (s *plannedMessageService) Update(ctx context.Context, msg *entity.PlannedMessage) error {
	existing, err := s.Get(ctx, msg.ID)
	if err != nil {
		return err
	}

	// Firing history is owned by the runner, not by the editor.
	msg.LastRunAt = existing.LastRunAt
	msg.CreatedAt = existing.CreatedAt

	if err := s.prepare(msg, s.clock()); err != nil {
		return err
	}

	if err := s.dm.PlannedMessage().Update(ctx, msg); err != nil {
		return fmt.Errorf("failed to update planned message: %w", err)
	}
	return nil
}

func (s *plannedMessageService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.dm.PlannedMessage().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete planned message: %w", err)
	}
	return nil
}

// SendTest delivers the message right away and waits for Discord's confirmation.
// The schedule is left untouched.
func (s *plannedMessageService) SendTest(ctx context.Context, id int64) (string, error) {
	msg, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return s.notifier.Send(ctx, msg.WebhookURL, msg.Content, true)
}

// RunDue fires every due planned message of one bounded batch.
//
// Each message is claimed (its schedule advanced and persisted) before it is
// sent, so a concurrent invocation that read the same row loses the claim
// instead of sending twice. Delivery is best-effort: a broken webhook never
// keeps a schedule from advancing.
func (s *plannedMessageService) RunDue(ctx context.Context, now time.Time) (entity.PlannedRunResult, error) {
	var result entity.PlannedRunResult
	now = now.UTC()

	due, err := s.dm.PlannedMessage().ListDue(ctx, now, domain.PlannedBatchSize)
	if err != nil {
		return result, fmt.Errorf("%w: failed to list due planned messages: %v", domain.ErrPersistenceUnavailable, err)
	}

	for _, msg := range due {
		logger := log.WithFields(log.Fields{"planned_message_id": msg.ID, "schedule": msg.Schedule})

		if msg.NextRunAt == nil {
			continue
		}
		claimed := *msg.NextRunAt

		if err := advanceSchedule(msg, now); err != nil {
			logger.Warnf("Planned message has a broken schedule and was disabled: %v", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("planned message %d disabled: %v", msg.ID, err))
		}

		won, err := s.dm.PlannedMessage().Advance(ctx, msg, claimed)
		if err != nil {
			logger.Errorf("Failed to persist planned message schedule: %v", err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("planned message %d: failed to persist schedule: %v", msg.ID, err))
			continue
		}
		if !won {
			logger.Info("Planned message was already claimed by another run, skipping")
			continue
		}
		result.Touched++

		if strings.TrimSpace(msg.WebhookURL) == "" || strings.TrimSpace(msg.Content) == "" {
			logger.Warn("Planned message has no webhook or content, nothing sent")
			continue
		}

		// best-effort: the notifier logs and swallows delivery failures
		_, _ = s.notifier.Send(ctx, msg.WebhookURL, msg.Content, false)
		result.Sent++

		publishEvent(ctx, s.events, entity.SubjectPlannedSent, entity.PlannedSentEvent{
			MessageID: msg.ID,
			Schedule:  msg.Schedule,
			FiredAt:   now,
			NextRunAt: msg.NextRunAt,
		})
	}

	if result.Touched > 0 {
		log.Infof("Planned messages processed: sent=%d touched=%d", result.Sent, result.Touched)
	}

	return result, nil
}

// advanceSchedule applies the post-firing state to msg. A schedule that can no
// longer be computed is disabled rather than left due forever.
func advanceSchedule(msg *entity.PlannedMessage, now time.Time) error {
	fired := now
	msg.LastRunAt = &fired

	if msg.Schedule == entity.ScheduleOnce {
		msg.Enabled = false
		msg.NextRunAt = nil
		return nil
	}

	next, err := ComputeNextRunAt(msg.ScheduleSpec(), now)
	if err != nil {
		msg.Enabled = false
		msg.NextRunAt = nil
		return err
	}
	msg.NextRunAt = &next
	return nil
}

// prepare validates an administrative edit and derives next_run_at.
func (s *plannedMessageService) prepare(msg *entity.PlannedMessage, now time.Time) error {
	msg.WebhookURL = strings.TrimSpace(msg.WebhookURL)
	if err := ValidateWebhookURL(msg.WebhookURL); err != nil {
		return err
	}

	msg.Content = strings.TrimSpace(msg.Content)
	if msg.Content == "" {
		return fmt.Errorf("%w: content is required", domain.ErrInvalidContent)
	}
	if utf8.RuneCountInString(msg.Content) > domain.MaxContentLength {
		return fmt.Errorf("%w: content exceeds %d characters", domain.ErrInvalidContent, domain.MaxContentLength)
	}

	msg.Timezone = strings.TrimSpace(msg.Timezone)
	if msg.Timezone == "" {
		msg.Timezone = domain.DefaultTimezone
	}
	if _, err := LoadLocation(msg.Timezone); err != nil {
		return err
	}

	msg.TimeOfDay = strings.TrimSpace(msg.TimeOfDay)
	switch msg.Schedule {
	case entity.ScheduleOnce:
		msg.TimeOfDay = ""
		msg.DayOfWeek = nil
		if msg.RunAt != nil {
			runAt := msg.RunAt.UTC()
			msg.RunAt = &runAt
		}
	case entity.ScheduleDaily:
		msg.RunAt = nil
		msg.DayOfWeek = nil
	case entity.ScheduleWeekly:
		msg.RunAt = nil
	default:
		return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidSchedule, msg.Schedule)
	}

	next, err := ComputeNextRunAt(msg.ScheduleSpec(), now)
	if err != nil {
		return err
	}

	if msg.Enabled {
		msg.NextRunAt = &next
	} else {
		msg.NextRunAt = nil
	}
	return nil
}

// ValidateWebhookURL accepts absolute http(s) URLs.
func ValidateWebhookURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: webhook url is required", domain.ErrInvalidWebhookURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidWebhookURL, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) url", domain.ErrInvalidWebhookURL, raw)
	}
	return nil
}

func publishEvent(ctx context.Context, events contract.EventPublisher, subject string, payload any) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, subject, payload); err != nil {
		log.WithField("subject", subject).Warnf("Failed to publish automation event: %v", err)
	}
}

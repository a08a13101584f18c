package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	log "github.com/sirupsen/logrus"
)

var snowflakePattern = regexp.MustCompile(`^[0-9]{1,20}$`)

type aktenService struct {
	dm       contract.DataManager
	notifier contract.Notifier
	events   contract.EventPublisher
	clock    func() time.Time
}

func newAkten(dm contract.DataManager, notifier contract.Notifier, events contract.EventPublisher) *aktenService {
	return &aktenService{
		dm:       dm,
		notifier: notifier,
		events:   events,
		clock:    time.Now,
	}
}

// DefaultAktenSettings is the configuration of a deployment that never saved one.
func DefaultAktenSettings() *entity.AktenSettings {
	return &entity.AktenSettings{
		ID:                   domain.AktenSettingsID,
		Timezone:             domain.DefaultTimezone,
		DayOfWeek:            domain.DefaultAktenDayOfWeek,
		TimeOfDay:            domain.DefaultAktenTimeOfDay,
		FollowupDelayMinutes: domain.DefaultFollowupDelayMinutes,
	}
}

func (s *aktenService) GetSettings(ctx context.Context) (*entity.AktenSettings, error) {
	settings, err := s.dm.AktenSettings().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get akten settings: %w", err)
	}
	if settings == nil {
		return DefaultAktenSettings(), nil
	}
	return settings, nil
}

// UpdateSettings validates and stores the administrative part of the settings.
// The open poll is runner state and survives the edit.
func (s *aktenService) UpdateSettings(ctx context.Context, in *entity.AktenSettings) (*entity.AktenSettings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings := *in
	settings.ID = domain.AktenSettingsID
	settings.ActivePollCreatedAt = current.ActivePollCreatedAt

	settings.WebhookURL = strings.TrimSpace(settings.WebhookURL)
	if settings.WebhookURL != "" || settings.Enabled {
		if err := ValidateWebhookURL(settings.WebhookURL); err != nil {
			return nil, err
		}
	}

	settings.Timezone = strings.TrimSpace(settings.Timezone)
	if settings.Timezone == "" {
		settings.Timezone = domain.DefaultTimezone
	}
	settings.TimeOfDay = strings.TrimSpace(settings.TimeOfDay)
	settings.FollowupDelayMinutes = domain.ClampFollowupDelay(settings.FollowupDelayMinutes)

	next, err := ComputeNextRunAt(settings.ScheduleSpec(), s.clock())
	if err != nil {
		return nil, err
	}
	if settings.Enabled {
		settings.NextPollAt = &next
	} else {
		settings.NextPollAt = nil
	}

	if err := s.dm.AktenSettings().Update(ctx, &settings); err != nil {
		return nil, fmt.Errorf("failed to update akten settings: %w", err)
	}

	log.WithFields(log.Fields{
		"enabled":      settings.Enabled,
		"day_of_week":  settings.DayOfWeek,
		"time_of_day":  settings.TimeOfDay,
		"timezone":     settings.Timezone,
		"next_poll_at": settings.NextPollAt,
	}).Info("Akten settings updated")

	return &settings, nil
}

// ListPool returns the pool in fairness order, next assignee first.
func (s *aktenService) ListPool(ctx context.Context) ([]*entity.PoolCandidate, error) {
	pool, err := s.dm.AktenPool().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list akten pool: %w", err)
	}
	return RankCandidates(pool), nil
}

// UpsertCandidate adds a candidate or updates its mention and label.
// Assignment counters of an existing candidate are kept.
func (s *aktenService) UpsertCandidate(ctx context.Context, candidate *entity.PoolCandidate) (*entity.PoolCandidate, error) {
	if err := normalizeCandidate(candidate); err != nil {
		return nil, err
	}

	if err := s.dm.AktenPool().Upsert(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to upsert pool candidate: %w", err)
	}

	stored, err := s.dm.AktenPool().GetByName(ctx, candidate.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get pool candidate: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("pool candidate %q: %w", candidate.Name, domain.ErrNotFound)
	}
	return stored, nil
}

// RemoveCandidate deletes a candidate from the pool. History keeps its label.
func (s *aktenService) RemoveCandidate(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	existing, err := s.dm.AktenPool().GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get pool candidate: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("pool candidate %q: %w", name, domain.ErrNotFound)
	}

	if err := s.dm.AktenPool().Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete pool candidate: %w", err)
	}
	return nil
}

func (s *aktenService) ResetFairness(ctx context.Context) (int64, error) {
	affected, err := s.dm.AktenPool().ResetFairness(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset fairness: %w", err)
	}
	log.Infof("Akten fairness reset for %d candidates", affected)
	return affected, nil
}

func (s *aktenService) ListHistory(ctx context.Context, limit int) ([]*entity.AktenHistoryEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	if limit > domain.MaxHistoryLimit {
		limit = domain.MaxHistoryLimit
	}

	history, err := s.dm.AktenHistory().List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list akten history: %w", err)
	}
	return history, nil
}

// Run advances the poll state machine by at most one poll and one follow-up.
//
// The open check runs before the follow-up check. Both transitions are
// guarded by conditional updates so overlapping invocations cannot open two
// polls or resolve one poll twice. Announcements are sent after the state is
// committed; a failed send is reported as a warning and never rolled back.
// On error the counts are zero but warnings collected so far are still returned.
func (s *aktenService) Run(ctx context.Context, now time.Time) (entity.AktenRunResult, error) {
	var result entity.AktenRunResult
	now = now.UTC()

	settings, err := s.dm.AktenSettings().Get(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: failed to load akten settings: %v", domain.ErrPersistenceUnavailable, err)
	}
	if settings == nil || !settings.Enabled || strings.TrimSpace(settings.WebhookURL) == "" {
		return result, nil
	}

	if !settings.PollOpen() && (settings.NextPollAt == nil || !settings.NextPollAt.After(now)) {
		opened, warning, err := s.openPoll(ctx, settings, now)
		if err != nil {
			return entity.AktenRunResult{Warnings: result.Warnings}, err
		}
		if opened {
			result.PollsSent++
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	if settings.PollOpen() && !now.Before(settings.FollowupDueAt()) {
		resolved, warning, err := s.resolveFollowup(ctx, settings, now)
		if err != nil {
			return entity.AktenRunResult{Warnings: result.Warnings}, err
		}
		if resolved {
			result.FollowupsProcessed++
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	return result, nil
}

func (s *aktenService) openPoll(ctx context.Context, settings *entity.AktenSettings, now time.Time) (bool, string, error) {
	next, err := ComputeNextRunAt(settings.ScheduleSpec(), now)
	if err != nil {
		return false, "", fmt.Errorf("failed to compute next akten poll: %w", err)
	}

	won, err := s.dm.AktenSettings().OpenPoll(ctx, now, next)
	if err != nil {
		return false, "", fmt.Errorf("%w: failed to open akten poll: %v", domain.ErrPersistenceUnavailable, err)
	}
	if !won {
		log.Info("Akten poll already opened by another run, skipping")
		return false, "", nil
	}

	createdAt := now
	settings.ActivePollCreatedAt = &createdAt
	settings.NextPollAt = &next

	logger := log.WithFields(log.Fields{"poll_created_at": createdAt, "next_poll_at": next})
	logger.Info("Akten poll opened")

	var warning string
	if _, err := s.notifier.Send(ctx, settings.WebhookURL, pollAnnouncement(settings), true); err != nil {
		logger.Warnf("Failed to announce akten poll: %v", err)
		warning = fmt.Sprintf("akten poll announcement failed: %v", err)
	}

	publishEvent(ctx, s.events, entity.SubjectAktenPollOpened, entity.AktenPollOpenedEvent{
		PollCreatedAt: createdAt,
		FollowupDueAt: settings.FollowupDueAt(),
		NextPollAt:    next,
	})

	return true, warning, nil
}

func (s *aktenService) resolveFollowup(ctx context.Context, settings *entity.AktenSettings, now time.Time) (bool, string, error) {
	pollCreatedAt := *settings.ActivePollCreatedAt

	pool, err := s.dm.AktenPool().List(ctx)
	if err != nil {
		return false, "", fmt.Errorf("%w: failed to load akten pool: %v", domain.ErrPersistenceUnavailable, err)
	}
	primary, backup := pickAssignees(pool)

	entry := &entity.AktenHistoryEntry{
		HappenedAt:    now,
		Mode:          domain.HistoryModeAuto,
		PollCreatedAt: &pollCreatedAt,
	}
	if primary != nil {
		label := primary.DisplayLabel()
		entry.ChosenPrimaryName = &label
	}
	if backup != nil {
		label := backup.DisplayLabel()
		entry.ChosenBackupName = &label
	}

	closed := false
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		won, err := tx.AktenSettings().ClosePoll(ctx, pollCreatedAt)
		if err != nil {
			return err
		}
		if !won {
			return nil
		}
		closed = true

		if primary != nil {
			if err := tx.AktenPool().RecordAssignment(ctx, primary.Name, now); err != nil {
				return err
			}
		}
		return tx.AktenHistory().Create(ctx, entry)
	})
	if err != nil {
		return false, "", fmt.Errorf("%w: failed to resolve akten follow-up: %v", domain.ErrPersistenceUnavailable, err)
	}
	if !closed {
		log.Info("Akten follow-up already resolved by another run, skipping")
		return false, "", nil
	}
	settings.ActivePollCreatedAt = nil

	logger := log.WithFields(log.Fields{
		"poll_created_at": pollCreatedAt,
		"primary":         derefLabel(entry.ChosenPrimaryName),
		"backup":          derefLabel(entry.ChosenBackupName),
	})
	logger.Info("Akten follow-up resolved")

	var warning string
	if _, err := s.notifier.Send(ctx, settings.WebhookURL, followupAnnouncement(primary, backup), true); err != nil {
		logger.Warnf("Failed to announce akten assignment: %v", err)
		warning = fmt.Sprintf("akten follow-up announcement failed: %v", err)
	}

	publishEvent(ctx, s.events, entity.SubjectAktenAssigned, entity.AktenAssignedEvent{Entry: entry})

	return true, warning, nil
}

// RankCandidates orders the pool by fewest assignments, then longest idle.
// Candidates never assigned count as idle since the epoch. Ties keep the
// input order.
func RankCandidates(pool []*entity.PoolCandidate) []*entity.PoolCandidate {
	ranked := make([]*entity.PoolCandidate, len(pool))
	copy(ranked, pool)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.TimesAssigned != b.TimesAssigned {
			return a.TimesAssigned < b.TimesAssigned
		}
		return lastAssigned(a).Before(lastAssigned(b))
	})
	return ranked
}

func lastAssigned(c *entity.PoolCandidate) time.Time {
	if c.LastAssignedAt == nil {
		return time.Unix(0, 0)
	}
	return *c.LastAssignedAt
}

func pickAssignees(pool []*entity.PoolCandidate) (primary, backup *entity.PoolCandidate) {
	ranked := RankCandidates(pool)
	if len(ranked) > 0 {
		primary = ranked[0]
	}
	if len(ranked) > 1 {
		backup = ranked[1]
	}
	return primary, backup
}

func derefLabel(label *string) string {
	if label == nil {
		return ""
	}
	return *label
}

func normalizeCandidate(c *entity.PoolCandidate) error {
	c.Name = strings.TrimSpace(c.Name)
	c.MentionID = strings.TrimSpace(c.MentionID)
	c.Label = strings.TrimSpace(c.Label)

	if c.MentionType == "" {
		c.MentionType = entity.MentionUser
	}
	if c.MentionType != entity.MentionUser && c.MentionType != entity.MentionRole {
		return fmt.Errorf("%w: mention_type must be user or role", domain.ErrInvalidCandidate)
	}
	if c.MentionID != "" && !snowflakePattern.MatchString(c.MentionID) {
		return fmt.Errorf("%w: mention_id %q is not a discord id", domain.ErrInvalidCandidate, c.MentionID)
	}

	if c.Name == "" {
		switch {
		case c.MentionID != "":
			c.Name = fmt.Sprintf("%s:%s", c.MentionType, c.MentionID)
		case c.Label != "":
			c.Name = c.Label
		default:
			return fmt.Errorf("%w: name, mention_id or label is required", domain.ErrInvalidCandidate)
		}
	}
	return nil
}

func pollAnnouncement(settings *entity.AktenSettings) string {
	return fmt.Sprintf(
		"📋 **Aktenkontrolle**\nWer übernimmt diese Woche die Aktenkontrolle? Meldet euch hier. "+
			"Ohne Freiwillige wird in %s automatisch eingeteilt.",
		formatDelay(settings.FollowupDelayMinutes),
	)
}

func followupAnnouncement(primary, backup *entity.PoolCandidate) string {
	if primary == nil {
		return "⚠️ **Aktenkontrolle**\nDer Pool ist leer, niemand konnte eingeteilt werden. Bitte Kandidaten im Dashboard hinterlegen."
	}

	var b strings.Builder
	b.WriteString("📋 **Aktenkontrolle**\n")
	fmt.Fprintf(&b, "%s ist diese Woche für die Aktenkontrolle eingeteilt.", primary.Mention())
	if backup != nil {
		fmt.Fprintf(&b, "\nErsatz: %s", backup.Mention())
	}
	return b.String()
}

func formatDelay(minutes int) string {
	d := time.Duration(minutes) * time.Minute
	hours := int(d.Hours())
	rest := minutes - hours*60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d Minuten", rest)
	case rest == 0 && hours == 1:
		return "einer Stunde"
	case rest == 0:
		return fmt.Sprintf("%d Stunden", hours)
	default:
		return fmt.Sprintf("%d:%02d Stunden", hours, rest)
	}
}

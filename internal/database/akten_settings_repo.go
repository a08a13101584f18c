package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
)

type aktenSettingsRepository struct {
	db dbConn
}

func newAktenSettingsRepository(db dbConn) contract.AktenSettingsRepo {
	return &aktenSettingsRepository{db: db}
}

func (r *aktenSettingsRepository) Get(ctx context.Context) (*entity.AktenSettings, error) {
	settings := &entity.AktenSettings{}
	query := `
		SELECT id, enabled, webhook_url, timezone, day_of_week, time_of_day,
			followup_delay_minutes, next_poll_at, active_poll_created_at, updated_at
		FROM akten_settings
		WHERE id = ?
	`

	var nextPollAt, activePollCreatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, domain.AktenSettingsID).Scan(
		&settings.ID,
		&settings.Enabled,
		&settings.WebhookURL,
		&settings.Timezone,
		&settings.DayOfWeek,
		&settings.TimeOfDay,
		&settings.FollowupDelayMinutes,
		&nextPollAt,
		&activePollCreatedAt,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get akten settings: %w", err)
	}

	settings.NextPollAt = timeFromNull(nextPollAt)
	settings.ActivePollCreatedAt = timeFromNull(activePollCreatedAt)
	return settings, nil
}

// Update writes the whole settings row, creating it when missing.
func (r *aktenSettingsRepository) Update(ctx context.Context, settings *entity.AktenSettings) error {
	query := `
		INSERT INTO akten_settings (id, enabled, webhook_url, timezone, day_of_week, time_of_day,
			followup_delay_minutes, next_poll_at, active_poll_created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			enabled = excluded.enabled,
			webhook_url = excluded.webhook_url,
			timezone = excluded.timezone,
			day_of_week = excluded.day_of_week,
			time_of_day = excluded.time_of_day,
			followup_delay_minutes = excluded.followup_delay_minutes,
			next_poll_at = excluded.next_poll_at,
			active_poll_created_at = excluded.active_poll_created_at,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		domain.AktenSettingsID,
		settings.Enabled,
		settings.WebhookURL,
		settings.Timezone,
		settings.DayOfWeek,
		settings.TimeOfDay,
		settings.FollowupDelayMinutes,
		nullTime(settings.NextPollAt),
		nullTime(settings.ActivePollCreatedAt),
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to update akten settings: %w", err)
	}

	settings.UpdatedAt = now
	return nil
}

func (r *aktenSettingsRepository) OpenPoll(ctx context.Context, createdAt, nextPollAt time.Time) (bool, error) {
	query := `
		UPDATE akten_settings
		SET active_poll_created_at = ?, next_poll_at = ?, updated_at = ?
		WHERE id = ? AND active_poll_created_at IS NULL
	`
	return r.execGuarded(ctx, query, createdAt.UTC(), nextPollAt.UTC(), time.Now().UTC(), domain.AktenSettingsID)
}

func (r *aktenSettingsRepository) ClosePoll(ctx context.Context, createdAt time.Time) (bool, error) {
	query := `
		UPDATE akten_settings
		SET active_poll_created_at = NULL, updated_at = ?
		WHERE id = ? AND active_poll_created_at = ?
	`
	return r.execGuarded(ctx, query, time.Now().UTC(), domain.AktenSettingsID, createdAt.UTC())
}

func (r *aktenSettingsRepository) execGuarded(ctx context.Context, query string, args ...any) (bool, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update akten poll state: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected == 1, nil
}

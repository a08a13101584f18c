package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
)

type plannedMessageRepository struct {
	db dbConn
}

func newPlannedMessageRepository(db dbConn) contract.PlannedMessageRepo {
	return &plannedMessageRepository{db: db}
}

const plannedMessageColumns = `
	id, enabled, webhook_url, content, schedule, run_at, time_of_day, day_of_week,
	timezone, next_run_at, last_run_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlannedMessage(row rowScanner) (*entity.PlannedMessage, error) {
	msg := &entity.PlannedMessage{}
	var (
		runAt     sql.NullTime
		timeOfDay sql.NullString
		dayOfWeek sql.NullInt64
		nextRunAt sql.NullTime
		lastRunAt sql.NullTime
	)

	err := row.Scan(
		&msg.ID,
		&msg.Enabled,
		&msg.WebhookURL,
		&msg.Content,
		&msg.Schedule,
		&runAt,
		&timeOfDay,
		&dayOfWeek,
		&msg.Timezone,
		&nextRunAt,
		&lastRunAt,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	msg.RunAt = timeFromNull(runAt)
	msg.TimeOfDay = timeOfDay.String
	msg.DayOfWeek = intFromNull(dayOfWeek)
	msg.NextRunAt = timeFromNull(nextRunAt)
	msg.LastRunAt = timeFromNull(lastRunAt)
	return msg, nil
}

func (r *plannedMessageRepository) Create(ctx context.Context, msg *entity.PlannedMessage) error {
	query := `
		INSERT INTO planned_messages (enabled, webhook_url, content, schedule, run_at, time_of_day,
			day_of_week, timezone, next_run_at, last_run_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		msg.Enabled,
		msg.WebhookURL,
		msg.Content,
		msg.Schedule,
		nullTime(msg.RunAt),
		nullString(msg.TimeOfDay),
		nullInt(msg.DayOfWeek),
		msg.Timezone,
		nullTime(msg.NextRunAt),
		nullTime(msg.LastRunAt),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create planned message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	msg.ID = id
	msg.CreatedAt = now
	msg.UpdatedAt = now
	return nil
}

func (r *plannedMessageRepository) GetByID(ctx context.Context, id int64) (*entity.PlannedMessage, error) {
	query := `SELECT ` + plannedMessageColumns + ` FROM planned_messages WHERE id = ?`

	msg, err := scanPlannedMessage(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get planned message: %w", err)
	}
	return msg, nil
}

func (r *plannedMessageRepository) List(ctx context.Context) ([]*entity.PlannedMessage, error) {
	query := `SELECT ` + plannedMessageColumns + ` FROM planned_messages ORDER BY id`
	return r.query(ctx, query)
}

func (r *plannedMessageRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*entity.PlannedMessage, error) {
	query := `SELECT ` + plannedMessageColumns + `
		FROM planned_messages
		WHERE enabled = 1 AND next_run_at IS NOT NULL AND next_run_at <= ?
		ORDER BY next_run_at ASC, id ASC
		LIMIT ?`
	return r.query(ctx, query, now.UTC(), limit)
}

func (r *plannedMessageRepository) query(ctx context.Context, query string, args ...any) ([]*entity.PlannedMessage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query planned messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.PlannedMessage
	for rows.Next() {
		msg, err := scanPlannedMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planned message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating planned messages: %w", err)
	}

	return messages, nil
}

func (r *plannedMessageRepository) Update(ctx context.Context, msg *entity.PlannedMessage) error {
	query := `
		UPDATE planned_messages
		SET enabled = ?, webhook_url = ?, content = ?, schedule = ?, run_at = ?, time_of_day = ?,
			day_of_week = ?, timezone = ?, next_run_at = ?, updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		msg.Enabled,
		msg.WebhookURL,
		msg.Content,
		msg.Schedule,
		nullTime(msg.RunAt),
		nullString(msg.TimeOfDay),
		nullInt(msg.DayOfWeek),
		msg.Timezone,
		nullTime(msg.NextRunAt),
		now,
		msg.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update planned message: %w", err)
	}

	msg.UpdatedAt = now
	return nil
}

func (r *plannedMessageRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM planned_messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete planned message: %w", err)
	}
	return nil
}

func (r *plannedMessageRepository) Advance(ctx context.Context, msg *entity.PlannedMessage, claimedNextRunAt time.Time) (bool, error) {
	query := `
		UPDATE planned_messages
		SET enabled = ?, next_run_at = ?, last_run_at = ?, updated_at = ?
		WHERE id = ? AND next_run_at = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		msg.Enabled,
		nullTime(msg.NextRunAt),
		nullTime(msg.LastRunAt),
		time.Now().UTC(),
		msg.ID,
		claimedNextRunAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to advance planned message: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected == 1, nil
}

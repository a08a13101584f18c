package database

import (
	"context"
	"testing"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlannedMessage(schedule entity.ScheduleKind, nextRunAt *time.Time) *entity.PlannedMessage {
	msg := &entity.PlannedMessage{
		Enabled:    true,
		WebhookURL: "https://discord.com/api/webhooks/1/token",
		Content:    "Flottenbesprechung in 30 Minuten",
		Schedule:   schedule,
		Timezone:   domain.DefaultTimezone,
		NextRunAt:  nextRunAt,
	}
	switch schedule {
	case entity.ScheduleOnce:
		msg.RunAt = nextRunAt
	case entity.ScheduleWeekly:
		day := domain.Friday
		msg.DayOfWeek = &day
		msg.TimeOfDay = "18:00"
	default:
		msg.TimeOfDay = "09:00"
	}
	return msg
}

func TestPlannedMessageRepository_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newPlannedMessageRepository(db.conn)

	next := time.Date(2025, time.October, 24, 16, 0, 0, 0, time.UTC)
	msg := newTestPlannedMessage(entity.ScheduleWeekly, &next)

	err := repo.Create(ctx, msg)
	require.NoError(t, err, "Failed to create planned message")
	assert.NotZero(t, msg.ID, "Expected planned message ID to be set after creation")

	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, msg.Content, got.Content)
	assert.Equal(t, entity.ScheduleWeekly, got.Schedule)
	assert.Equal(t, "18:00", got.TimeOfDay)
	require.NotNil(t, got.DayOfWeek)
	assert.Equal(t, domain.Friday, *got.DayOfWeek)
	assert.Nil(t, got.RunAt)
	assert.Nil(t, got.LastRunAt)
	require.NotNil(t, got.NextRunAt)
	assert.True(t, next.Equal(*got.NextRunAt))

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPlannedMessageRepository_ListDue(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newPlannedMessageRepository(db.conn)

	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	earlier := now.Add(-2 * time.Hour)
	justNow := now.Add(-time.Second)

	dueLate := newTestPlannedMessage(entity.ScheduleDaily, &justNow)
	dueEarly := newTestPlannedMessage(entity.ScheduleOnce, &earlier)
	future := newTestPlannedMessage(entity.ScheduleDaily, &later)
	disabled := newTestPlannedMessage(entity.ScheduleDaily, &earlier)
	disabled.Enabled = false
	unscheduled := newTestPlannedMessage(entity.ScheduleDaily, nil)

	for _, msg := range []*entity.PlannedMessage{dueLate, dueEarly, future, disabled, unscheduled} {
		require.NoError(t, repo.Create(ctx, msg))
	}

	due, err := repo.ListDue(ctx, now, 50)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, dueEarly.ID, due[0].ID, "oldest due message first")
	assert.Equal(t, dueLate.ID, due[1].ID)

	limited, err := repo.ListDue(ctx, now, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, dueEarly.ID, limited[0].ID)
}

func TestPlannedMessageRepository_Advance(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newPlannedMessageRepository(db.conn)

	due := time.Date(2025, time.June, 10, 7, 0, 0, 0, time.UTC)
	msg := newTestPlannedMessage(entity.ScheduleDaily, &due)
	require.NoError(t, repo.Create(ctx, msg))

	stale, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)

	now := due.Add(time.Second)
	next := due.Add(24 * time.Hour)
	msg.LastRunAt = &now
	msg.NextRunAt = &next

	won, err := repo.Advance(ctx, msg, due)
	require.NoError(t, err)
	assert.True(t, won, "first claim should win")

	// a second run still holding the old next_run_at must lose
	stale.LastRunAt = &now
	stale.NextRunAt = &next
	won, err = repo.Advance(ctx, stale, due)
	require.NoError(t, err)
	assert.False(t, won, "claim with the already consumed slot should lose")

	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	require.NotNil(t, got.NextRunAt)
	assert.True(t, next.Equal(*got.NextRunAt))
	require.NotNil(t, got.LastRunAt)
	assert.True(t, now.Equal(*got.LastRunAt))
}

func TestPlannedMessageRepository_UpdateAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newPlannedMessageRepository(db.conn)

	next := time.Date(2025, time.June, 10, 7, 0, 0, 0, time.UTC)
	msg := newTestPlannedMessage(entity.ScheduleDaily, &next)
	require.NoError(t, repo.Create(ctx, msg))

	msg.Content = "Geändert"
	msg.Enabled = false
	msg.NextRunAt = nil
	require.NoError(t, repo.Update(ctx, msg))

	got, err := repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Geändert", got.Content)
	assert.False(t, got.Enabled)
	assert.Nil(t, got.NextRunAt)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, msg.ID))

	got, err = repo.GetByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

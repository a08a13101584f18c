package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/galactic-marines/gm-automation/internal/database"
	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	"github.com/galactic-marines/gm-automation/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	webhookURL string
	content    string
	wait       bool
}

// recordingNotifier captures deliveries instead of calling Discord.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (n *recordingNotifier) Send(_ context.Context, webhookURL, content string, wait bool) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{webhookURL: webhookURL, content: content, wait: wait})
	return "1", nil
}

func (n *recordingNotifier) messages() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.sent...)
}

func newScenario(t *testing.T) (contract.DataManager, *Instance, *recordingNotifier) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	dm := database.NewInstance(db)
	notifier := &recordingNotifier{}
	return dm, NewInstance(dm, notifier, events.NoopPublisher{}), notifier
}

func seedPool(t *testing.T, dm contract.DataManager, counts map[string]int) {
	t.Helper()
	ctx := context.Background()

	for name, count := range counts {
		require.NoError(t, dm.AktenPool().Upsert(ctx, &entity.PoolCandidate{Name: name, MentionType: entity.MentionUser}))
		for i := 0; i < count; i++ {
			require.NoError(t, dm.AktenPool().RecordAssignment(ctx, name, time.Date(2025, time.January, 1+i, 0, 0, 0, 0, time.UTC)))
		}
	}
}

func enableRotation(t *testing.T, dm contract.DataManager, delayMinutes int) {
	t.Helper()

	settings := enabledSettings()
	settings.FollowupDelayMinutes = delayMinutes
	require.NoError(t, dm.AktenSettings().Update(context.Background(), settings))
}

func TestScenario_FridayPollAndFollowup(t *testing.T) {
	ctx := context.Background()
	dm, svc, notifier := newScenario(t)

	enableRotation(t, dm, 180)
	seedPool(t, dm, map[string]int{"user:1": 2, "user:2": 0})

	// Friday 18:00:05 Berlin opens the poll
	pollTime := berlin(t, 2025, time.October, 24, 18, 0, 5)
	result := svc.Automation.Run(ctx, pollTime)
	assert.Equal(t, 1, result.Akten.PollsSent)
	assert.Equal(t, 0, result.Akten.FollowupsProcessed)
	assert.Empty(t, result.Warnings)

	settings, err := dm.AktenSettings().Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings.ActivePollCreatedAt)
	assert.True(t, pollTime.Equal(*settings.ActivePollCreatedAt))
	require.NotNil(t, settings.NextPollAt)
	// next Friday 18:00 Berlin is after the switch to winter time
	assert.True(t, berlin(t, 2025, time.October, 31, 18, 0, 0).Equal(*settings.NextPollAt), "got %s", settings.NextPollAt)

	// Friday 21:00:05 Berlin resolves the follow-up
	followupTime := berlin(t, 2025, time.October, 24, 21, 0, 5)
	result = svc.Automation.Run(ctx, followupTime)
	assert.Equal(t, 0, result.Akten.PollsSent)
	assert.Equal(t, 1, result.Akten.FollowupsProcessed)

	primary, err := dm.AktenPool().GetByName(ctx, "user:2")
	require.NoError(t, err)
	assert.Equal(t, 1, primary.TimesAssigned)
	require.NotNil(t, primary.LastAssignedAt)
	assert.True(t, followupTime.Equal(*primary.LastAssignedAt))

	backup, err := dm.AktenPool().GetByName(ctx, "user:1")
	require.NoError(t, err)
	assert.Equal(t, 2, backup.TimesAssigned, "naming a backup does not count as assignment")

	history, err := dm.AktenHistory().List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "user:2", *history[0].ChosenPrimaryName)
	assert.Equal(t, "user:1", *history[0].ChosenBackupName)
	assert.True(t, pollTime.Equal(*history[0].PollCreatedAt))

	settings, err = dm.AktenSettings().Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings.ActivePollCreatedAt)

	sent := notifier.messages()
	require.Len(t, sent, 2)
	assert.True(t, sent[0].wait)
	assert.Contains(t, sent[1].content, "user:2")
	assert.Contains(t, sent[1].content, "Ersatz: user:1")
}

func TestScenario_NoDoublePollNoEarlyFollowup(t *testing.T) {
	ctx := context.Background()
	dm, svc, notifier := newScenario(t)

	enableRotation(t, dm, 30)
	seedPool(t, dm, map[string]int{"user:1": 0})

	opened := berlin(t, 2025, time.October, 24, 18, 0, 5)
	result, err := svc.Akten.Run(ctx, opened)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PollsSent)

	for _, offset := range []time.Duration{time.Second, 5 * time.Minute, 29*time.Minute + 59*time.Second} {
		result, err := svc.Akten.Run(ctx, opened.Add(offset))
		require.NoError(t, err)
		assert.Zero(t, result.PollsSent, "offset %s", offset)
		assert.Zero(t, result.FollowupsProcessed, "offset %s", offset)
	}
	assert.Len(t, notifier.messages(), 1)

	result, err = svc.Akten.Run(ctx, opened.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, result.FollowupsProcessed)

	result, err = svc.Akten.Run(ctx, opened.Add(31*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, result.PollsSent, "next poll is a week away")
	assert.Zero(t, result.FollowupsProcessed)
}

func TestScenario_ResetThenTwoDifferentAssignees(t *testing.T) {
	ctx := context.Background()
	dm, svc, _ := newScenario(t)

	enableRotation(t, dm, 60)
	seedPool(t, dm, map[string]int{"user:a": 5, "user:b": 1, "user:c": 3})

	affected, err := svc.Akten.ResetFairness(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	var assignees []string
	start := berlin(t, 2025, time.November, 7, 18, 0, 0)
	for week := 0; week < 2; week++ {
		pollAt := start.AddDate(0, 0, 7*week)

		result, err := svc.Akten.Run(ctx, pollAt)
		require.NoError(t, err)
		require.Equal(t, 1, result.PollsSent, "week %d", week)

		result, err = svc.Akten.Run(ctx, pollAt.Add(time.Hour))
		require.NoError(t, err)
		require.Equal(t, 1, result.FollowupsProcessed, "week %d", week)

		history, err := svc.Akten.ListHistory(ctx, 1)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assignees = append(assignees, *history[0].ChosenPrimaryName)
	}

	assert.NotEqual(t, assignees[0], assignees[1])
}

func TestScenario_FairnessNeverSkipsLowerCount(t *testing.T) {
	ctx := context.Background()
	dm, svc, _ := newScenario(t)

	enableRotation(t, dm, 60)
	seedPool(t, dm, map[string]int{"user:a": 0, "user:b": 0, "user:c": 1})

	pollAt := berlin(t, 2025, time.November, 7, 18, 0, 0)
	_, err := svc.Akten.Run(ctx, pollAt)
	require.NoError(t, err)
	_, err = svc.Akten.Run(ctx, pollAt.Add(time.Hour))
	require.NoError(t, err)

	history, err := svc.Akten.ListHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Contains(t, []string{"user:a", "user:b"}, *history[0].ChosenPrimaryName)
	assert.Contains(t, []string{"user:a", "user:b"}, *history[0].ChosenBackupName)
}

func TestScenario_OnceMessageFiresExactlyOnce(t *testing.T) {
	ctx := context.Background()
	_, svc, notifier := newScenario(t)

	due := time.Date(2025, time.June, 10, 7, 0, 0, 0, time.UTC)
	msg := &entity.PlannedMessage{
		Enabled:    true,
		WebhookURL: testWebhook,
		Content:    "Manöver beginnt",
		Schedule:   entity.ScheduleOnce,
		RunAt:      &due,
	}
	require.NoError(t, svc.PlannedMessage.Create(ctx, msg))

	result := svc.Automation.Run(ctx, due.Add(time.Second))
	assert.Equal(t, 1, result.Planned.Sent)
	assert.Equal(t, 1, result.Planned.Touched)

	stored, err := svc.PlannedMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.False(t, stored.Enabled)
	assert.Nil(t, stored.NextRunAt)
	require.NotNil(t, stored.LastRunAt)

	result = svc.Automation.Run(ctx, due.Add(2*time.Second))
	assert.Zero(t, result.Planned.Sent)
	assert.Zero(t, result.Planned.Touched)

	sent := notifier.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "Manöver beginnt", sent[0].content)
	assert.False(t, sent[0].wait, "planned messages are sent best-effort")
}

func TestScenario_DailyMessageAdvances(t *testing.T) {
	ctx := context.Background()
	_, svc, notifier := newScenario(t)

	msg := &entity.PlannedMessage{
		Enabled:    true,
		WebhookURL: testWebhook,
		Content:    "Guten Morgen, Marines",
		Schedule:   entity.ScheduleDaily,
		TimeOfDay:  "07:30",
		Timezone:   "Europe/Berlin",
	}
	require.NoError(t, svc.PlannedMessage.Create(ctx, msg))
	require.NotNil(t, msg.NextRunAt)

	first := *msg.NextRunAt
	for day := 0; day < 3; day++ {
		current, err := svc.PlannedMessage.Get(ctx, msg.ID)
		require.NoError(t, err)
		require.NotNil(t, current.NextRunAt)

		result := svc.Automation.Run(ctx, current.NextRunAt.Add(time.Second))
		assert.Equal(t, 1, result.Planned.Sent)
	}

	current, err := svc.PlannedMessage.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, current.Enabled)
	assert.True(t, current.NextRunAt.After(first.Add(3*23*time.Hour)))
	assert.Len(t, notifier.messages(), 3)
}

func TestScenario_ConcurrentRunsDoNotDoubleFire(t *testing.T) {
	ctx := context.Background()
	dm, svc, notifier := newScenario(t)

	enableRotation(t, dm, 60)
	seedPool(t, dm, map[string]int{"user:1": 0, "user:2": 0})

	due := berlin(t, 2025, time.November, 7, 17, 0, 0)
	require.NoError(t, svc.PlannedMessage.Create(ctx, &entity.PlannedMessage{
		Enabled: true, WebhookURL: testWebhook, Content: "x", Schedule: entity.ScheduleOnce, RunAt: &due,
	}))

	now := berlin(t, 2025, time.November, 7, 18, 0, 0)
	var wg sync.WaitGroup
	results := make([]entity.AutomationResult, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Automation.Run(ctx, now)
		}(i)
	}
	wg.Wait()

	var sent, polls int
	for _, r := range results {
		sent += r.Planned.Sent
		polls += r.Akten.PollsSent
	}
	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, polls)
	assert.Len(t, notifier.messages(), 2)

	settings, err := dm.AktenSettings().Get(ctx)
	require.NoError(t, err)
	assert.True(t, settings.PollOpen())
	assert.Equal(t, domain.Friday, settings.DayOfWeek)
}

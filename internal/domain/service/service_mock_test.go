package service

import (
	"context"
	"testing"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockPlannedRepo    *mocks.MockPlannedMessageRepo
	mockSettingsRepo   *mocks.MockAktenSettingsRepo
	mockPoolRepo       *mocks.MockAktenPoolRepo
	mockHistoryRepo    *mocks.MockAktenHistoryRepo
	mockNotifier       *mocks.MockNotifier
	mockEventPublisher *mocks.MockEventPublisher
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	plannedRepo := mocks.NewMockPlannedMessageRepo(ctrl)
	dm.EXPECT().PlannedMessage().Return(plannedRepo).AnyTimes()

	settingsRepo := mocks.NewMockAktenSettingsRepo(ctrl)
	dm.EXPECT().AktenSettings().Return(settingsRepo).AnyTimes()

	poolRepo := mocks.NewMockAktenPoolRepo(ctrl)
	dm.EXPECT().AktenPool().Return(poolRepo).AnyTimes()

	historyRepo := mocks.NewMockAktenHistoryRepo(ctrl)
	dm.EXPECT().AktenHistory().Return(historyRepo).AnyTimes()

	// transactions run against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	notifier := mocks.NewMockNotifier(ctrl)
	events := mocks.NewMockEventPublisher(ctrl)
	events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockPlannedRepo:    plannedRepo,
		mockSettingsRepo:   settingsRepo,
		mockPoolRepo:       poolRepo,
		mockHistoryRepo:    historyRepo,
		mockNotifier:       notifier,
		mockEventPublisher: events,
	}

	// validate service creation
	instance := NewInstance(dm, notifier, events)
	require.NotNil(t, instance)
	require.NotNil(t, instance.Automation)

	return
}

// fixedClock returns a clock that always reads at.
func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func berlin(t *testing.T, year int, month time.Month, day, hour, minute, sec int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return time.Date(year, month, day, hour, minute, sec, 0, loc)
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }

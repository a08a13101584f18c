package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	"github.com/galactic-marines/gm-automation/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const seedYAML = `
settings:
  enabled: true
  webhook_url: https://discord.com/api/webhooks/1/token
  timezone: Europe/Berlin
  day_of_week: 5
  time_of_day: "18:00"
  followup_delay_minutes: 180
pool:
  - mention_type: user
    mention_id: "111111111111111111"
    label: Hauptmann Rex
  - mention_type: role
    mention_id: "222222222222222222"
  - name: Kadett Fives
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	f, err := Load(writeSeed(t, seedYAML))
	require.NoError(t, err)

	require.NotNil(t, f.Settings)
	assert.True(t, f.Settings.Enabled)
	assert.Equal(t, domain.Friday, f.Settings.DayOfWeek)
	assert.Equal(t, "18:00", f.Settings.TimeOfDay)
	assert.Equal(t, 180, f.Settings.FollowupDelayMinutes)

	require.Len(t, f.Pool, 3)
	assert.Equal(t, "Hauptmann Rex", f.Pool[0].Label)
	assert.Equal(t, "role", f.Pool[1].MentionType)
	assert.Equal(t, "Kadett Fives", f.Pool[2].Name)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read seed file")

	_, err = Load(writeSeed(t, "pool: [unterminated"))
	assert.ErrorContains(t, err, "failed to parse seed file")
}

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		buildMocks  func(akten *mocks.MockAktenService)
		wantSummary Summary
		wantErr     string
	}{
		{
			name: "Should seed pool before settings",
			yaml: seedYAML,
			buildMocks: func(akten *mocks.MockAktenService) {
				gomock.InOrder(
					akten.EXPECT().UpsertCandidate(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, c *entity.PoolCandidate) (*entity.PoolCandidate, error) {
							return &entity.PoolCandidate{Name: "user:" + c.MentionID}, nil
						}).Times(3),
					akten.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, s *entity.AktenSettings) (*entity.AktenSettings, error) {
							assert.True(t, s.Enabled)
							return s, nil
						}).Times(1),
				)
			},
			wantSummary: Summary{SettingsApplied: true, Candidates: 3},
		},
		{
			name: "Should skip absent settings",
			yaml: "pool:\n  - name: Solo\n",
			buildMocks: func(akten *mocks.MockAktenService) {
				akten.EXPECT().UpsertCandidate(gomock.Any(), &entity.PoolCandidate{Name: "Solo"}).
					Return(&entity.PoolCandidate{Name: "Solo"}, nil).Times(1)
			},
			wantSummary: Summary{Candidates: 1},
		},
		{
			name: "Should stop at the first invalid candidate",
			yaml: seedYAML,
			buildMocks: func(akten *mocks.MockAktenService) {
				akten.EXPECT().UpsertCandidate(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: mention id must be a snowflake", domain.ErrInvalidCandidate)).Times(1)
			},
			wantErr: "failed to seed pool entry 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			akten := mocks.NewMockAktenService(ctrl)
			tt.buildMocks(akten)

			f, err := Load(writeSeed(t, tt.yaml))
			require.NoError(t, err)

			summary, err := Apply(context.Background(), akten, f)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrInvalidCandidate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSummary, summary)
		})
	}
}

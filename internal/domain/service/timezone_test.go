package service

import (
	"testing"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZonedTimeToUTC(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		year    int
		month   time.Month
		day     int
		hour    int
		minute  int
		want    time.Time
		wantErr error
	}{
		{
			name: "Should apply winter offset in January",
			tz:   "Europe/Berlin", year: 2025, month: time.January, day: 15, hour: 12, minute: 0,
			want: time.Date(2025, time.January, 15, 11, 0, 0, 0, time.UTC),
		},
		{
			name: "Should apply summer offset in July",
			tz:   "Europe/Berlin", year: 2025, month: time.July, day: 15, hour: 12, minute: 0,
			want: time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "Should use the offset of the target date on the day before spring forward",
			tz:   "Europe/Berlin", year: 2025, month: time.March, day: 29, hour: 18, minute: 0,
			want: time.Date(2025, time.March, 29, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "Should use the summer offset right after spring forward",
			tz:   "Europe/Berlin", year: 2025, month: time.March, day: 30, hour: 3, minute: 30,
			want: time.Date(2025, time.March, 30, 1, 30, 0, 0, time.UTC),
		},
		{
			name: "Should use the winter offset after fall back",
			tz:   "Europe/Berlin", year: 2025, month: time.October, day: 26, hour: 18, minute: 0,
			want: time.Date(2025, time.October, 26, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "Should normalize day overflow into the next month",
			tz:   "UTC", year: 2025, month: time.January, day: 32, hour: 9, minute: 15,
			want: time.Date(2025, time.February, 1, 9, 15, 0, 0, time.UTC),
		},
		{
			name: "Should fall back to the default timezone when blank",
			tz:   "", year: 2025, month: time.July, day: 1, hour: 0, minute: 0,
			want: time.Date(2025, time.June, 30, 22, 0, 0, 0, time.UTC),
		},
		{
			name: "Should reject unknown timezone",
			tz:   "Mars/Olympus_Mons", year: 2025, month: time.July, day: 1,
			wantErr: domain.ErrInvalidTimezone,
		},
		{
			name: "Should reject host dependent Local timezone",
			tz:   "Local", year: 2025, month: time.July, day: 1,
			wantErr: domain.ErrInvalidTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ZonedTimeToUTC(tt.tz, tt.year, tt.month, tt.day, tt.hour, tt.minute)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestZonedTimeRoundTrip(t *testing.T) {
	type wallClock struct {
		year   int
		month  time.Month
		day    int
		hour   int
		minute int
	}

	zones := []string{"Europe/Berlin", "America/New_York", "Australia/Sydney", "UTC"}
	clocks := []wallClock{
		{2025, time.January, 15, 9, 30},
		{2025, time.July, 4, 23, 59},
		// Berlin spring forward day, before and after the gap
		{2025, time.March, 30, 1, 59},
		{2025, time.March, 30, 3, 0},
		{2025, time.March, 30, 18, 0},
		// Berlin fall back day, including the repeated hour
		{2025, time.October, 26, 2, 30},
		{2025, time.October, 26, 3, 0},
		{2025, time.October, 26, 18, 0},
		// New York transitions
		{2025, time.March, 9, 12, 0},
		{2025, time.November, 2, 12, 0},
		{2024, time.February, 29, 0, 0},
	}

	for _, tz := range zones {
		for _, c := range clocks {
			utc, err := ZonedTimeToUTC(tz, c.year, c.month, c.day, c.hour, c.minute)
			require.NoError(t, err)

			parts, err := LocalPartsOf(utc, tz)
			require.NoError(t, err)

			assert.Equal(t, c.year, parts.Year, "%s %+v", tz, c)
			assert.Equal(t, c.month, parts.Month, "%s %+v", tz, c)
			assert.Equal(t, c.day, parts.Day, "%s %+v", tz, c)
			assert.Equal(t, c.hour, parts.Hour, "%s %+v", tz, c)
			assert.Equal(t, c.minute, parts.Minute, "%s %+v", tz, c)
		}
	}
}

func TestLocalPartsOf(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		tz          string
		wantDay     int
		wantHour    int
		wantWeekday int
	}{
		{
			name:        "Should report Sunday as ISO weekday 7",
			now:         time.Date(2025, time.March, 30, 12, 0, 0, 0, time.UTC),
			tz:          "Europe/Berlin",
			wantDay:     30,
			wantHour:    14,
			wantWeekday: domain.Sunday,
		},
		{
			name:        "Should roll over into the next local day",
			now:         time.Date(2025, time.October, 23, 22, 30, 0, 0, time.UTC),
			tz:          "Europe/Berlin",
			wantDay:     24,
			wantHour:    0,
			wantWeekday: domain.Friday,
		},
		{
			name:        "Should report Monday as ISO weekday 1",
			now:         time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC),
			tz:          "UTC",
			wantDay:     2,
			wantHour:    8,
			wantWeekday: domain.Monday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := LocalPartsOf(tt.now, tt.tz)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, parts.Day)
			assert.Equal(t, tt.wantHour, parts.Hour)
			assert.Equal(t, tt.wantWeekday, parts.Weekday)
		})
	}

	_, err := LocalPartsOf(time.Now(), "Not/AZone")
	require.ErrorIs(t, err, domain.ErrInvalidTimezone)
}

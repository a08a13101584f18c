package entity

import "time"

// PlannedMessage is an administrator-authored webhook message with a recurrence.
type PlannedMessage struct {
	ID         int64        `json:"id"`
	Enabled    bool         `json:"enabled"`
	WebhookURL string       `json:"webhook_url"`
	Content    string       `json:"content"`
	Schedule   ScheduleKind `json:"schedule"`
	RunAt      *time.Time   `json:"run_at"`
	TimeOfDay  string       `json:"time_of_day,omitempty"`
	DayOfWeek  *int         `json:"day_of_week"`
	Timezone   string       `json:"timezone"`
	NextRunAt  *time.Time   `json:"next_run_at"`
	LastRunAt  *time.Time   `json:"last_run_at"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// ScheduleSpec returns the recurrence definition of the message.
func (m *PlannedMessage) ScheduleSpec() ScheduleSpec {
	return ScheduleSpec{
		Kind:      m.Schedule,
		Timezone:  m.Timezone,
		RunAt:     m.RunAt,
		TimeOfDay: m.TimeOfDay,
		DayOfWeek: m.DayOfWeek,
	}
}

// PlannedRunResult summarizes one pass of the planned message runner.
type PlannedRunResult struct {
	Sent     int      `json:"sent"`
	Touched  int      `json:"touched"`
	Warnings []string `json:"-"`
}

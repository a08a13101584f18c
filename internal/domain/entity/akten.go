package entity

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// AktenSettings is the singleton configuration and state of the Aktenkontrolle rotation.
type AktenSettings struct {
	ID                   int64      `json:"id"`
	Enabled              bool       `json:"enabled"`
	WebhookURL           string     `json:"webhook_url"`
	Timezone             string     `json:"timezone"`
	DayOfWeek            int        `json:"day_of_week"`
	TimeOfDay            string     `json:"time_of_day"`
	FollowupDelayMinutes int        `json:"followup_delay_minutes"`
	NextPollAt           *time.Time `json:"next_poll_at"`
	ActivePollCreatedAt  *time.Time `json:"active_poll_created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// PollOpen reports whether a poll is waiting for its follow-up.
func (s *AktenSettings) PollOpen() bool {
	return s.ActivePollCreatedAt != nil
}

// FollowupDueAt is the instant the open poll must be resolved at.
func (s *AktenSettings) FollowupDueAt() time.Time {
	if s.ActivePollCreatedAt == nil {
		return time.Time{}
	}
	return s.ActivePollCreatedAt.Add(time.Duration(s.FollowupDelayMinutes) * time.Minute)
}

// ScheduleSpec returns the weekly poll recurrence.
func (s *AktenSettings) ScheduleSpec() ScheduleSpec {
	day := s.DayOfWeek
	return ScheduleSpec{
		Kind:      ScheduleWeekly,
		Timezone:  s.Timezone,
		TimeOfDay: s.TimeOfDay,
		DayOfWeek: &day,
	}
}

// MentionType is the kind of Discord mention a pool candidate resolves to.
type MentionType string

const (
	MentionUser MentionType = "user"
	MentionRole MentionType = "role"
)

// PoolCandidate is one member of the Aktenkontrolle fairness pool.
type PoolCandidate struct {
	Name           string      `json:"name"`
	MentionType    MentionType `json:"mention_type"`
	MentionID      string      `json:"mention_id,omitempty"`
	Label          string      `json:"label,omitempty"`
	TimesAssigned  int         `json:"times_assigned"`
	LastAssignedAt *time.Time  `json:"last_assigned_at"`
	CreatedAt      time.Time   `json:"created_at"`
}

// DisplayLabel is the human readable snapshot stored in history.
func (c *PoolCandidate) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

// Mention renders the candidate as a Discord mention token, falling back to
// plain text when no platform id is known.
func (c *PoolCandidate) Mention() string {
	if c.MentionID == "" {
		return c.DisplayLabel()
	}
	if c.MentionType == MentionRole {
		return (&discordgo.Role{ID: c.MentionID}).Mention()
	}
	return (&discordgo.User{ID: c.MentionID}).Mention()
}

// AktenHistoryEntry is the immutable record of one resolved follow-up.
type AktenHistoryEntry struct {
	ID                int64      `json:"id"`
	HappenedAt        time.Time  `json:"happened_at"`
	ChosenPrimaryName *string    `json:"chosen_primary_name"`
	ChosenBackupName  *string    `json:"chosen_backup_name"`
	Mode              string     `json:"mode"`
	PollCreatedAt     *time.Time `json:"poll_created_at"`
}

// AktenRunResult summarizes one pass of the rotator.
type AktenRunResult struct {
	PollsSent          int      `json:"pollsSent"`
	FollowupsProcessed int      `json:"followupsProcessed"`
	Warnings           []string `json:"-"`
}

// AutomationResult is what a single scheduler invocation reports.
type AutomationResult struct {
	Planned  PlannedRunResult `json:"planned"`
	Akten    AktenRunResult   `json:"akten"`
	Warnings []string         `json:"warnings"`
}

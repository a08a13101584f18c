package entity

import "time"

// Subjects published on the event bus.
const (
	SubjectPlannedSent     = "automation.planned.sent"
	SubjectAktenPollOpened = "automation.akten.poll_opened"
	SubjectAktenAssigned   = "automation.akten.assigned"
)

// PlannedSentEvent is published after a planned message fired.
type PlannedSentEvent struct {
	MessageID int64        `json:"message_id"`
	Schedule  ScheduleKind `json:"schedule"`
	FiredAt   time.Time    `json:"fired_at"`
	NextRunAt *time.Time   `json:"next_run_at"`
}

// AktenPollOpenedEvent is published after a weekly poll was opened.
type AktenPollOpenedEvent struct {
	PollCreatedAt time.Time `json:"poll_created_at"`
	FollowupDueAt time.Time `json:"followup_due_at"`
	NextPollAt    time.Time `json:"next_poll_at"`
}

// AktenAssignedEvent is published after a follow-up was resolved.
type AktenAssignedEvent struct {
	Entry *AktenHistoryEntry `json:"entry"`
}

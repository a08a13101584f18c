package models

import (
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/entity"
)

// PlannedMessageRequest is the admin API body for creating or replacing a planned message.
type PlannedMessageRequest struct {
	Enabled    *bool      `json:"enabled"`
	WebhookURL string     `json:"webhook_url"`
	Content    string     `json:"content"`
	Schedule   string     `json:"schedule"`
	RunAt      *time.Time `json:"run_at"`      // once
	TimeOfDay  string     `json:"time_of_day"` // daily, weekly (HH:MM)
	DayOfWeek  *int       `json:"day_of_week"` // weekly (1=Mon ... 7=Sun)
	Timezone   string     `json:"timezone"`
}

// ToEntity converts the request. Messages are enabled unless stated otherwise.
func (r PlannedMessageRequest) ToEntity(id int64) *entity.PlannedMessage {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return &entity.PlannedMessage{
		ID:         id,
		Enabled:    enabled,
		WebhookURL: r.WebhookURL,
		Content:    r.Content,
		Schedule:   entity.ScheduleKind(r.Schedule),
		RunAt:      r.RunAt,
		TimeOfDay:  r.TimeOfDay,
		DayOfWeek:  r.DayOfWeek,
		Timezone:   r.Timezone,
	}
}

// AktenSettingsRequest is the admin API body for the rotation settings.
type AktenSettingsRequest struct {
	Enabled              bool   `json:"enabled" yaml:"enabled"`
	WebhookURL           string `json:"webhook_url" yaml:"webhook_url"`
	Timezone             string `json:"timezone" yaml:"timezone"`
	DayOfWeek            int    `json:"day_of_week" yaml:"day_of_week"`
	TimeOfDay            string `json:"time_of_day" yaml:"time_of_day"`
	FollowupDelayMinutes int    `json:"followup_delay_minutes" yaml:"followup_delay_minutes"`
}

func (r AktenSettingsRequest) ToEntity() *entity.AktenSettings {
	return &entity.AktenSettings{
		Enabled:              r.Enabled,
		WebhookURL:           r.WebhookURL,
		Timezone:             r.Timezone,
		DayOfWeek:            r.DayOfWeek,
		TimeOfDay:            r.TimeOfDay,
		FollowupDelayMinutes: r.FollowupDelayMinutes,
	}
}

// PoolCandidateRequest adds or updates a pool member. Name may be left empty
// when a mention id or label is given.
type PoolCandidateRequest struct {
	Name        string `json:"name" yaml:"name"`
	MentionType string `json:"mention_type" yaml:"mention_type"`
	MentionID   string `json:"mention_id" yaml:"mention_id"`
	Label       string `json:"label" yaml:"label"`
}

func (r PoolCandidateRequest) ToEntity() *entity.PoolCandidate {
	return &entity.PoolCandidate{
		Name:        r.Name,
		MentionType: entity.MentionType(r.MentionType),
		MentionID:   r.MentionID,
		Label:       r.Label,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ResetFairnessResponse struct {
	Reset int64 `json:"reset"`
}

type TestSendResponse struct {
	MessageID string `json:"message_id"`
}

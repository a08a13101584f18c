package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// ISOWeekday converts a Go weekday (Sunday = 0) into its ISO 8601 number (Sunday = 7).
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return Sunday
	}
	return int(d)
}

// DefaultTimezone is used whenever a schedule is stored without a zone.
// It may be overridden once at startup from configuration.
var DefaultTimezone = "Europe/Berlin"

// Planned message runner limits
const (
	// PlannedBatchSize caps how many due messages a single invocation handles.
	PlannedBatchSize = 50

	// RescheduleMargin is how far past "now" a recomputed firing must land.
	RescheduleMargin = 10 * time.Second

	// RecurrenceScanDays is how many local days (today included) are scanned for the next firing.
	RecurrenceScanDays = 8

	// MaxContentLength is Discord's message content limit.
	MaxContentLength = 2000
)

// Aktenkontrolle defaults and bounds
const (
	AktenSettingsID = 1

	MinFollowupDelayMinutes     = 5
	MaxFollowupDelayMinutes     = 1440
	DefaultFollowupDelayMinutes = 180

	DefaultAktenDayOfWeek = Friday
	DefaultAktenTimeOfDay = "18:00"

	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500

	HistoryModeAuto = "auto"
)

// ClampFollowupDelay keeps the follow-up delay inside the supported window.
func ClampFollowupDelay(minutes int) int {
	if minutes < MinFollowupDelayMinutes {
		return MinFollowupDelayMinutes
	}
	if minutes > MaxFollowupDelayMinutes {
		return MaxFollowupDelayMinutes
	}
	return minutes
}

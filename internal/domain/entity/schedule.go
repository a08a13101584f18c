package entity

import "time"

// ScheduleKind is the recurrence kind of a schedule.
type ScheduleKind string

const (
	ScheduleOnce   ScheduleKind = "once"
	ScheduleDaily  ScheduleKind = "daily"
	ScheduleWeekly ScheduleKind = "weekly"
)

// Valid reports whether k is one of the known recurrence kinds.
func (k ScheduleKind) Valid() bool {
	switch k {
	case ScheduleOnce, ScheduleDaily, ScheduleWeekly:
		return true
	}
	return false
}

// ScheduleSpec is everything the recurrence engine needs to find the next firing.
type ScheduleSpec struct {
	Kind      ScheduleKind
	Timezone  string
	RunAt     *time.Time // once
	TimeOfDay string     // daily, weekly (HH:MM)
	DayOfWeek *int       // weekly (ISO 1-7)
}

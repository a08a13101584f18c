package service

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseTimeOfDay parses a zero-padded 24h HH:MM value.
func ParseTimeOfDay(value string) (hour, minute int, err error) {
	m := timeOfDayPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidTimeOfDay, value)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, nil
}

// ValidWeekday reports whether day is an ISO weekday number.
func ValidWeekday(day int) bool {
	return day >= domain.Monday && day <= domain.Sunday
}

// ComputeNextRunAt returns the next instant a schedule fires after now.
//
// Recurring schedules scan today and the following days in the schedule's own
// timezone and re-derive the UTC offset for every candidate, so DST weeks need
// no special casing.
func ComputeNextRunAt(spec entity.ScheduleSpec, now time.Time) (time.Time, error) {
	switch spec.Kind {
	case entity.ScheduleOnce:
		if spec.RunAt == nil || spec.RunAt.IsZero() {
			return time.Time{}, fmt.Errorf("%w: run_at is required for once schedules", domain.ErrInvalidSchedule)
		}
		return spec.RunAt.UTC(), nil

	case entity.ScheduleDaily:
		return scanForward(spec.Timezone, spec.TimeOfDay, 0, now)

	case entity.ScheduleWeekly:
		if spec.DayOfWeek == nil || !ValidWeekday(*spec.DayOfWeek) {
			return time.Time{}, fmt.Errorf("%w: %s", domain.ErrInvalidWeekday, describeWeekday(spec.DayOfWeek))
		}
		return scanForward(spec.Timezone, spec.TimeOfDay, *spec.DayOfWeek, now)

	default:
		return time.Time{}, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidSchedule, spec.Kind)
	}
}

// scanForward finds the first local day (weekday == 0 means any day) whose
// timeOfDay lands strictly after now + domain.RescheduleMargin.
func scanForward(tz, timeOfDay string, weekday int, now time.Time) (time.Time, error) {
	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	today, err := LocalPartsOf(now, tz)
	if err != nil {
		return time.Time{}, err
	}

	earliest := now.Add(domain.RescheduleMargin)
	for offset := 0; offset < domain.RecurrenceScanDays; offset++ {
		// time.Date normalizes day overflow into the next month.
		candidate, err := ZonedTimeToUTC(tz, today.Year, today.Month, today.Day+offset, hour, minute)
		if err != nil {
			return time.Time{}, err
		}
		if weekday != 0 {
			parts, err := LocalPartsOf(candidate, tz)
			if err != nil {
				return time.Time{}, err
			}
			if parts.Weekday != weekday {
				continue
			}
		}
		if candidate.After(earliest) {
			return candidate, nil
		}
	}

	return ZonedTimeToUTC(tz, today.Year, today.Month, today.Day+1, hour, minute)
}

func describeWeekday(day *int) string {
	if day == nil {
		return "missing"
	}
	return strconv.Itoa(*day)
}

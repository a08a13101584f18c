package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain"
)

// LocalParts is a wall clock reading in a specific timezone.
type LocalParts struct {
	Year    int
	Month   time.Month
	Day     int
	Hour    int
	Minute  int
	Second  int
	Weekday int // ISO 8601, 1=Monday ... 7=Sunday
}

var locationCache sync.Map // map[string]*time.Location

// LoadLocation resolves an IANA timezone name. A blank name means domain.DefaultTimezone.
func LoadLocation(tz string) (*time.Location, error) {
	name := strings.TrimSpace(tz)
	if name == "" {
		name = domain.DefaultTimezone
	}
	if cached, ok := locationCache.Load(name); ok {
		return cached.(*time.Location), nil
	}
	// "Local" depends on the host, never a stored schedule.
	if name == "Local" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, tz)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, tz)
	}
	locationCache.Store(name, loc)
	return loc, nil
}

// ZonedTimeToUTC returns the instant the given wall clock reading denotes in tz.
// The offset applied is the one the zone has at that date, not today's.
func ZonedTimeToUTC(tz string, year int, month time.Month, day, hour, minute int) (time.Time, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, month, day, hour, minute, 0, 0, loc).UTC(), nil
}

// LocalPartsOf is the inverse of ZonedTimeToUTC: it reads the wall clock of now in tz.
func LocalPartsOf(now time.Time, tz string) (LocalParts, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return LocalParts{}, err
	}
	local := now.In(loc)
	return LocalParts{
		Year:    local.Year(),
		Month:   local.Month(),
		Day:     local.Day(),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
		Second:  local.Second(),
		Weekday: domain.ISOWeekday(local.Weekday()),
	}, nil
}

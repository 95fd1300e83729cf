package utils

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const localZoneName = "Local"

// LocalDayBounds returns [midnight, next midnight) of the day containing now in loc.
func LocalDayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// LoadLocation resolves an IANA zone name. An empty name means UTC so that the
// result can always be handed to the database by name. "Local" is refused
// because the database cannot resolve it.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	if name == localZoneName {
		return nil, fmt.Errorf("timezone %q has no IANA name, set APP_TIMEZONE to a zone such as Africa/Nairobi", name)
	}
	return time.LoadLocation(name)
}

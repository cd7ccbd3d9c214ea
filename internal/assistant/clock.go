package assistant

import (
	"time"
)

// Clock provides the current time. It exists so that tests can run the
// interpreter against a fixed instant instead of the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// today returns the current calendar day as a UTC midnight time.
//
// If an IANA timezone is given, the day is derived from the calendar
// fields of the clock reading in that zone. This is deliberately not
// offset arithmetic, which would drift across DST boundaries. Unknown
// zones fall back to UTC.
func today(clock Clock, tz string) time.Time {
	now := clock.Now()

	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			now = now.In(loc)
		}
	} else {
		now = now.In(time.UTC)
	}

	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

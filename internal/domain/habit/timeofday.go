package habit

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute resolution. Reminders match
// habits by comparing this value against the current minute.
type TimeOfDay struct {
	hour   int
	minute int
}

// ParseTimeOfDay parses "HH:MM". Seconds, if present, are dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		if t, err2 := time.Parse("15:04:05", s); err2 == nil {
			return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
		}
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

// TimeOfDayFromClock truncates a timestamp to its minute-of-day.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return t.minute }

// String renders the canonical "HH:MM" form used for storage and display.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

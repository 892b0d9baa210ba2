// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone only decides
// which wall-clock minute a reminder belongs to.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NowBiz returns current time in the business timezone.
func NowBiz() time.Time {
	return time.Now().In(Location())
}

// TruncateToMinute drops seconds and sub-second precision.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

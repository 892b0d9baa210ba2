package habit

import (
	"time"

	"atomichabits/internal/shared/errors"
)

// MaxDuration is the longest a habit may take to perform.
const MaxDuration = 120 * time.Second

// MinPeriodicityDays and MaxPeriodicityDays bound how often a habit repeats.
// A habit cannot be performed less often than once a week.
const (
	MinPeriodicityDays = 1
	MaxPeriodicityDays = 7
)

// Fields is the fully-merged candidate state of a habit. For partial updates
// the caller overlays the submitted fields onto the persisted values before
// validation; an omitted field keeps its stored value, never a zero value.
type Fields struct {
	PlaceID        *uint
	Time           TimeOfDay
	Action         string
	IsPleasant     bool
	RelatedHabitID *uint
	Periodicity    int
	Reward         string
	// Duration is nil when the field was never supplied. That is a distinct
	// failure from a zero or negative duration.
	Duration *time.Duration
	IsPublic bool
}

// RelatedRef carries the facts validation needs about the habit referenced by
// Fields.RelatedHabitID. A nil RelatedRef with a non-nil RelatedHabitID means
// the reference could not be resolved.
type RelatedRef struct {
	ID         uint
	IsPleasant bool
}

// Validate checks every business rule against the merged candidate state and
// collects all violations into one field→message map. selfID is the habit's
// own ID for updates, or zero for a habit not yet persisted.
//
// Rules, in evaluation order:
//  1. reward and related habit are mutually exclusive;
//  2. the related habit must be pleasant;
//  3. a pleasant habit has neither reward nor related habit;
//  4. periodicity is between 1 and 7 days;
//  5. duration is required, positive, and at most 120 seconds;
//  6. the related habit must exist and must not be the habit itself.
//
// Every mutation path goes through this function with the same inputs, so no
// path can persist an invalid habit.
func Validate(f Fields, related *RelatedRef, selfID uint) errors.FieldErrors {
	fieldErrs := errors.FieldErrors{}

	// 1) reward and related_habit are mutually exclusive
	if f.Reward != "" && f.RelatedHabitID != nil {
		msg := "Cannot set both a reward and a related habit."
		fieldErrs["reward"] = msg
		fieldErrs["related_habit"] = msg
	}

	// 2) related_habit must be pleasant
	if f.RelatedHabitID != nil && related != nil && !related.IsPleasant {
		fieldErrs["related_habit"] = "The related habit must be marked as pleasant."
	}

	// 3) a pleasant habit cannot have a reward or a related habit
	if f.IsPleasant {
		if f.Reward != "" {
			fieldErrs["reward"] = "A pleasant habit cannot have a reward."
		}
		if f.RelatedHabitID != nil {
			fieldErrs["related_habit"] = "A pleasant habit cannot have a related habit."
		}
	}

	// 4) periodicity: 1..7 days
	if f.Periodicity < MinPeriodicityDays {
		fieldErrs["periodicity"] = "Periodicity must be at least 1 day."
	} else if f.Periodicity > MaxPeriodicityDays {
		fieldErrs["periodicity"] = "A habit cannot be performed less often than once every 7 days."
	}

	// 5) duration: required, > 0, <= 120 seconds
	switch {
	case f.Duration == nil:
		fieldErrs["duration"] = "Duration is required."
	case *f.Duration <= 0:
		fieldErrs["duration"] = "Duration must be greater than zero."
	case *f.Duration > MaxDuration:
		fieldErrs["duration"] = "Duration must not exceed 120 seconds."
	}

	// 6) the related habit must exist and must not be the habit itself
	if f.RelatedHabitID != nil {
		if selfID != 0 && *f.RelatedHabitID == selfID {
			fieldErrs["related_habit"] = "A habit cannot be its own related habit."
		} else if related == nil {
			fieldErrs["related_habit"] = "The related habit does not exist."
		}
	}

	if len(fieldErrs) == 0 {
		return nil
	}
	return fieldErrs
}

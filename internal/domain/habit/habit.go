package habit

import (
	"fmt"
	"strings"
	"time"

	"atomichabits/internal/shared/biztime"
	"atomichabits/internal/shared/errors"
)

// PlaceRef is a denormalized reference to the place a habit is performed at.
// It is resolved eagerly when the habit is loaded so rendering the title
// never needs a second query.
type PlaceRef struct {
	ID   uint
	Name string
}

// Habit represents the habit aggregate root. A useful habit (is_pleasant =
// false) may carry either a reward or a pleasant related habit; a pleasant
// habit carries neither and serves as a reward itself.
type Habit struct {
	id             uint
	ownerID        uint
	place          *PlaceRef
	timeOfDay      TimeOfDay
	action         string
	isPleasant     bool
	relatedHabitID *uint
	periodicity    int
	reward         string
	duration       time.Duration
	isPublic       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewHabit creates a new habit owned by ownerID. The owner always comes from
// the authenticated actor, never from client input. place must be the
// resolved reference for f.PlaceID (nil when no place is set) and related the
// resolved reference for f.RelatedHabitID.
func NewHabit(ownerID uint, f Fields, place *PlaceRef, related *RelatedRef) (*Habit, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	if fieldErrs := Validate(f, related, 0); fieldErrs != nil {
		return nil, errors.NewFieldValidationError(fieldErrs)
	}

	now := biztime.NowUTC()
	return &Habit{
		ownerID:        ownerID,
		place:          place,
		timeOfDay:      f.Time,
		action:         f.Action,
		isPleasant:     f.IsPleasant,
		relatedHabitID: f.RelatedHabitID,
		periodicity:    f.Periodicity,
		reward:         f.Reward,
		duration:       *f.Duration,
		isPublic:       f.IsPublic,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructHabit rebuilds a habit from persistence. No validation runs; the
// stored state already passed every mutation path.
func ReconstructHabit(
	id uint,
	ownerID uint,
	place *PlaceRef,
	timeOfDay TimeOfDay,
	action string,
	isPleasant bool,
	relatedHabitID *uint,
	periodicity int,
	reward string,
	duration time.Duration,
	isPublic bool,
	createdAt, updatedAt time.Time,
) *Habit {
	return &Habit{
		id:             id,
		ownerID:        ownerID,
		place:          place,
		timeOfDay:      timeOfDay,
		action:         action,
		isPleasant:     isPleasant,
		relatedHabitID: relatedHabitID,
		periodicity:    periodicity,
		reward:         reward,
		duration:       duration,
		isPublic:       isPublic,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Getters
func (h *Habit) ID() uint              { return h.id }
func (h *Habit) OwnerID() uint         { return h.ownerID }
func (h *Habit) Place() *PlaceRef      { return h.place }
func (h *Habit) TimeOfDay() TimeOfDay  { return h.timeOfDay }
func (h *Habit) Action() string        { return h.action }
func (h *Habit) IsPleasant() bool      { return h.isPleasant }
func (h *Habit) RelatedHabitID() *uint { return h.relatedHabitID }
func (h *Habit) Periodicity() int      { return h.periodicity }
func (h *Habit) Reward() string        { return h.reward }
func (h *Habit) Duration() time.Duration { return h.duration }
func (h *Habit) IsPublic() bool        { return h.isPublic }
func (h *Habit) CreatedAt() time.Time  { return h.createdAt }
func (h *Habit) UpdatedAt() time.Time  { return h.updatedAt }

// SetID sets the habit ID (only for persistence layer use)
func (h *Habit) SetID(id uint) {
	h.id = id
}

// Fields returns the habit's current mutable state. Update paths overlay the
// submitted fields onto this snapshot so partial updates fall back to stored
// values.
func (h *Habit) Fields() Fields {
	var placeID *uint
	if h.place != nil {
		id := h.place.ID
		placeID = &id
	}
	duration := h.duration
	return Fields{
		PlaceID:        placeID,
		Time:           h.timeOfDay,
		Action:         h.action,
		IsPleasant:     h.isPleasant,
		RelatedHabitID: h.relatedHabitID,
		Periodicity:    h.periodicity,
		Reward:         h.reward,
		Duration:       &duration,
		IsPublic:       h.isPublic,
	}
}

// ApplyUpdate validates the merged field set against the business rules and,
// if valid, replaces the habit's state. The owner never changes.
func (h *Habit) ApplyUpdate(f Fields, place *PlaceRef, related *RelatedRef) error {
	if fieldErrs := Validate(f, related, h.id); fieldErrs != nil {
		return errors.NewFieldValidationError(fieldErrs)
	}

	h.place = place
	h.timeOfDay = f.Time
	h.action = f.Action
	h.isPleasant = f.IsPleasant
	h.relatedHabitID = f.RelatedHabitID
	h.periodicity = f.Periodicity
	h.reward = f.Reward
	h.duration = *f.Duration
	h.isPublic = f.IsPublic
	h.updatedAt = biztime.NowUTC()
	return nil
}

// ClearPlace drops the weak place reference. Deleting a place never deletes
// the habits performed there.
func (h *Habit) ClearPlace() {
	h.place = nil
	h.updatedAt = biztime.NowUTC()
}

// Title renders the dynamic human-readable name of the habit. It is derived,
// never persisted, and is shared between API output and reminder text.
//
// Example: "I will drink water daily at 12:00 at Office".
func (h *Habit) Title() string {
	var freq string
	switch h.periodicity {
	case 1:
		freq = "daily"
	case 7:
		freq = "weekly"
	default:
		freq = fmt.Sprintf("every %d days", h.periodicity)
	}

	place := "wherever"
	if h.place != nil {
		place = "at " + h.place.Name
	}

	return fmt.Sprintf("I will %s %s at %s %s",
		strings.ToLower(h.action), freq, h.timeOfDay.String(), place)
}

package dto

import "time"

// HabitPlaceDTO is the embedded place reference inside a habit payload.
type HabitPlaceDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// HabitDTO is the API representation of a habit. Title is derived from the
// current field values on every read and never stored.
type HabitDTO struct {
	ID              uint           `json:"id"`
	OwnerID         uint           `json:"owner_id"`
	Title           string         `json:"title"`
	Place           *HabitPlaceDTO `json:"place,omitempty"`
	Time            string         `json:"time"`
	Action          string         `json:"action"`
	IsPleasant      bool           `json:"is_pleasant"`
	RelatedHabitID  *uint          `json:"related_habit_id,omitempty"`
	Periodicity     int            `json:"periodicity"`
	Reward          string         `json:"reward,omitempty"`
	DurationSeconds int            `json:"duration"`
	IsPublic        bool           `json:"is_public"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// PlaceDTO is the API representation of a place.
type PlaceDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

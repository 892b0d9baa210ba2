package dto

import (
	"time"

	"atomichabits/internal/domain/habit"
)

// ToHabitDTO converts a habit aggregate to its API representation.
func ToHabitDTO(h *habit.Habit) *HabitDTO {
	if h == nil {
		return nil
	}

	var place *HabitPlaceDTO
	if p := h.Place(); p != nil {
		place = &HabitPlaceDTO{ID: p.ID, Name: p.Name}
	}

	return &HabitDTO{
		ID:              h.ID(),
		OwnerID:         h.OwnerID(),
		Title:           h.Title(),
		Place:           place,
		Time:            h.TimeOfDay().String(),
		Action:          h.Action(),
		IsPleasant:      h.IsPleasant(),
		RelatedHabitID:  h.RelatedHabitID(),
		Periodicity:     h.Periodicity(),
		Reward:          h.Reward(),
		DurationSeconds: int(h.Duration() / time.Second),
		IsPublic:        h.IsPublic(),
		CreatedAt:       h.CreatedAt(),
		UpdatedAt:       h.UpdatedAt(),
	}
}

// ToHabitDTOList batch converts habits. Returns an empty slice for nil input.
func ToHabitDTOList(habits []*habit.Habit) []*HabitDTO {
	dtos := make([]*HabitDTO, 0, len(habits))
	for _, h := range habits {
		if h != nil {
			dtos = append(dtos, ToHabitDTO(h))
		}
	}
	return dtos
}

// ToPlaceDTO converts a place aggregate to its API representation.
func ToPlaceDTO(p *habit.Place) *PlaceDTO {
	if p == nil {
		return nil
	}
	return &PlaceDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// ToPlaceDTOList batch converts places. Returns an empty slice for nil input.
func ToPlaceDTOList(places []*habit.Place) []*PlaceDTO {
	dtos := make([]*PlaceDTO, 0, len(places))
	for _, p := range places {
		if p != nil {
			dtos = append(dtos, ToPlaceDTO(p))
		}
	}
	return dtos
}

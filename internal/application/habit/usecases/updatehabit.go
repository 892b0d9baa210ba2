package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

// UpdateHabitCommand carries a partial update. A nil field keeps the stored
// value. For the two nullable references a pointer to zero clears the
// reference, since zero is never a real ID.
type UpdateHabitCommand struct {
	HabitID         uint
	ActorID         uint
	PlaceID         *uint
	Time            *string
	Action          *string
	IsPleasant      *bool
	RelatedHabitID  *uint
	Periodicity     *int
	Reward          *string
	DurationSeconds *int
	IsPublic        *bool
}

type UpdateHabitUseCase struct {
	habitRepo habit.Repository
	placeRepo habit.PlaceRepository
	logger    logger.Interface
}

func NewUpdateHabitUseCase(
	habitRepo habit.Repository,
	placeRepo habit.PlaceRepository,
	logger logger.Interface,
) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo: habitRepo,
		placeRepo: placeRepo,
		logger:    logger,
	}
}

func (uc *UpdateHabitUseCase) Execute(ctx context.Context, cmd UpdateHabitCommand) (*dto.HabitDTO, error) {
	h, err := uc.habitRepo.GetByID(ctx, cmd.HabitID)
	if err != nil {
		uc.logger.Errorw("failed to get habit", "error", err, "habit_id", cmd.HabitID)
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	if err := checkWriteAccess(h, cmd.ActorID); err != nil {
		return nil, err
	}

	// Overlay submitted fields onto the stored state so validation always
	// sees the complete candidate.
	fields := h.Fields()

	if cmd.PlaceID != nil {
		if *cmd.PlaceID == 0 {
			fields.PlaceID = nil
		} else {
			fields.PlaceID = cmd.PlaceID
		}
	}
	if cmd.Time != nil {
		timeOfDay, err := habit.ParseTimeOfDay(*cmd.Time)
		if err != nil {
			return nil, errors.NewFieldValidationError(errors.FieldErrors{
				"time": "Time must be in HH:MM format.",
			})
		}
		fields.Time = timeOfDay
	}
	if cmd.Action != nil {
		fields.Action = *cmd.Action
	}
	if cmd.IsPleasant != nil {
		fields.IsPleasant = *cmd.IsPleasant
	}
	if cmd.RelatedHabitID != nil {
		if *cmd.RelatedHabitID == 0 {
			fields.RelatedHabitID = nil
		} else {
			fields.RelatedHabitID = cmd.RelatedHabitID
		}
	}
	if cmd.Periodicity != nil {
		fields.Periodicity = *cmd.Periodicity
	}
	if cmd.Reward != nil {
		fields.Reward = *cmd.Reward
	}
	if cmd.DurationSeconds != nil {
		fields.Duration = secondsToDuration(cmd.DurationSeconds)
	}
	if cmd.IsPublic != nil {
		fields.IsPublic = *cmd.IsPublic
	}

	place, err := resolvePlaceRef(ctx, uc.placeRepo, fields.PlaceID)
	if err != nil {
		return nil, err
	}

	related, err := resolveRelatedRef(ctx, uc.habitRepo, fields.RelatedHabitID)
	if err != nil {
		uc.logger.Errorw("failed to resolve related habit", "error", err, "related_habit_id", fields.RelatedHabitID)
		return nil, err
	}

	if err := h.ApplyUpdate(fields, place, related); err != nil {
		uc.logger.Warnw("habit validation failed", "error", err, "habit_id", cmd.HabitID)
		return nil, err
	}

	if err := uc.habitRepo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to update habit", "error", err, "habit_id", cmd.HabitID)
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	uc.logger.Infow("habit updated", "habit_id", h.ID(), "owner_id", h.OwnerID())
	return dto.ToHabitDTO(h), nil
}

package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

type CreateHabitCommand struct {
	OwnerID         uint // always the authenticated actor, never client input
	PlaceID         *uint
	Time            string
	Action          string
	IsPleasant      bool
	RelatedHabitID  *uint
	Periodicity     int
	Reward          string
	DurationSeconds *int
	IsPublic        bool
}

type CreateHabitUseCase struct {
	habitRepo habit.Repository
	placeRepo habit.PlaceRepository
	logger    logger.Interface
}

func NewCreateHabitUseCase(
	habitRepo habit.Repository,
	placeRepo habit.PlaceRepository,
	logger logger.Interface,
) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
		placeRepo: placeRepo,
		logger:    logger,
	}
}

func (uc *CreateHabitUseCase) Execute(ctx context.Context, cmd CreateHabitCommand) (*dto.HabitDTO, error) {
	timeOfDay, err := habit.ParseTimeOfDay(cmd.Time)
	if err != nil {
		return nil, errors.NewFieldValidationError(errors.FieldErrors{
			"time": "Time must be in HH:MM format.",
		})
	}

	place, err := resolvePlaceRef(ctx, uc.placeRepo, cmd.PlaceID)
	if err != nil {
		return nil, err
	}

	related, err := resolveRelatedRef(ctx, uc.habitRepo, cmd.RelatedHabitID)
	if err != nil {
		uc.logger.Errorw("failed to resolve related habit", "error", err, "related_habit_id", cmd.RelatedHabitID)
		return nil, err
	}

	fields := habit.Fields{
		PlaceID:        cmd.PlaceID,
		Time:           timeOfDay,
		Action:         cmd.Action,
		IsPleasant:     cmd.IsPleasant,
		RelatedHabitID: cmd.RelatedHabitID,
		Periodicity:    cmd.Periodicity,
		Reward:         cmd.Reward,
		Duration:       secondsToDuration(cmd.DurationSeconds),
		IsPublic:       cmd.IsPublic,
	}

	h, err := habit.NewHabit(cmd.OwnerID, fields, place, related)
	if err != nil {
		uc.logger.Warnw("habit validation failed", "error", err, "owner_id", cmd.OwnerID)
		return nil, err
	}

	if err := uc.habitRepo.Create(ctx, h); err != nil {
		uc.logger.Errorw("failed to create habit", "error", err, "owner_id", cmd.OwnerID)
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	uc.logger.Infow("habit created", "habit_id", h.ID(), "owner_id", cmd.OwnerID)
	return dto.ToHabitDTO(h), nil
}

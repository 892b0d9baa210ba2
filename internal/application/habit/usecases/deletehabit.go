package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/logger"
)

type DeleteHabitCommand struct {
	HabitID uint
	ActorID uint
}

type DeleteHabitUseCase struct {
	habitRepo habit.Repository
	logger    logger.Interface
}

func NewDeleteHabitUseCase(habitRepo habit.Repository, logger logger.Interface) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{habitRepo: habitRepo, logger: logger}
}

func (uc *DeleteHabitUseCase) Execute(ctx context.Context, cmd DeleteHabitCommand) error {
	h, err := uc.habitRepo.GetByID(ctx, cmd.HabitID)
	if err != nil {
		uc.logger.Errorw("failed to get habit", "error", err, "habit_id", cmd.HabitID)
		return fmt.Errorf("failed to get habit: %w", err)
	}

	if err := checkWriteAccess(h, cmd.ActorID); err != nil {
		return err
	}

	if err := uc.habitRepo.Delete(ctx, cmd.HabitID); err != nil {
		uc.logger.Errorw("failed to delete habit", "error", err, "habit_id", cmd.HabitID)
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	uc.logger.Infow("habit deleted", "habit_id", cmd.HabitID, "owner_id", h.OwnerID())
	return nil
}

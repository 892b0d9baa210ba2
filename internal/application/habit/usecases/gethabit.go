package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/logger"
)

type GetHabitQuery struct {
	HabitID uint
	ActorID uint
}

type GetHabitUseCase struct {
	habitRepo habit.Repository
	logger    logger.Interface
}

func NewGetHabitUseCase(habitRepo habit.Repository, logger logger.Interface) *GetHabitUseCase {
	return &GetHabitUseCase{habitRepo: habitRepo, logger: logger}
}

func (uc *GetHabitUseCase) Execute(ctx context.Context, query GetHabitQuery) (*dto.HabitDTO, error) {
	h, err := uc.habitRepo.GetByID(ctx, query.HabitID)
	if err != nil {
		uc.logger.Errorw("failed to get habit", "error", err, "habit_id", query.HabitID)
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}

	if err := checkReadAccess(h, query.ActorID); err != nil {
		return nil, err
	}

	return dto.ToHabitDTO(h), nil
}

package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/logger"
)

type ListPublicHabitsQuery struct {
	Page     int
	PageSize int
}

type ListPublicHabitsResult struct {
	Habits []*dto.HabitDTO
	Total  int64
}

// ListPublicHabitsUseCase lists habits shared by any user. The listing is
// read-only; writes stay owner-scoped.
type ListPublicHabitsUseCase struct {
	habitRepo habit.Repository
	logger    logger.Interface
}

func NewListPublicHabitsUseCase(habitRepo habit.Repository, logger logger.Interface) *ListPublicHabitsUseCase {
	return &ListPublicHabitsUseCase{habitRepo: habitRepo, logger: logger}
}

func (uc *ListPublicHabitsUseCase) Execute(ctx context.Context, query ListPublicHabitsQuery) (*ListPublicHabitsResult, error) {
	habits, total, err := uc.habitRepo.ListPublic(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list public habits", "error", err)
		return nil, fmt.Errorf("failed to list public habits: %w", err)
	}

	return &ListPublicHabitsResult{
		Habits: dto.ToHabitDTOList(habits),
		Total:  total,
	}, nil
}

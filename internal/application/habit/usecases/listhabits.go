package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/logger"
)

type ListHabitsQuery struct {
	OwnerID  uint
	Page     int
	PageSize int
}

type ListHabitsResult struct {
	Habits []*dto.HabitDTO
	Total  int64
}

// ListHabitsUseCase lists the actor's own habits. Other users' private
// habits never appear here regardless of query parameters.
type ListHabitsUseCase struct {
	habitRepo habit.Repository
	logger    logger.Interface
}

func NewListHabitsUseCase(habitRepo habit.Repository, logger logger.Interface) *ListHabitsUseCase {
	return &ListHabitsUseCase{habitRepo: habitRepo, logger: logger}
}

func (uc *ListHabitsUseCase) Execute(ctx context.Context, query ListHabitsQuery) (*ListHabitsResult, error) {
	habits, total, err := uc.habitRepo.ListByOwner(ctx, query.OwnerID, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list habits", "error", err, "owner_id", query.OwnerID)
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	return &ListHabitsResult{
		Habits: dto.ToHabitDTOList(habits),
		Total:  total,
	}, nil
}

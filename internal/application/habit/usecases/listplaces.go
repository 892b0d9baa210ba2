package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/logger"
)

type ListPlacesQuery struct {
	Page     int
	PageSize int
}

type ListPlacesResult struct {
	Places []*dto.PlaceDTO
	Total  int64
}

type ListPlacesUseCase struct {
	placeRepo habit.PlaceRepository
	logger    logger.Interface
}

func NewListPlacesUseCase(placeRepo habit.PlaceRepository, logger logger.Interface) *ListPlacesUseCase {
	return &ListPlacesUseCase{placeRepo: placeRepo, logger: logger}
}

func (uc *ListPlacesUseCase) Execute(ctx context.Context, query ListPlacesQuery) (*ListPlacesResult, error) {
	places, total, err := uc.placeRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list places", "error", err)
		return nil, fmt.Errorf("failed to list places: %w", err)
	}

	return &ListPlacesResult{
		Places: dto.ToPlaceDTOList(places),
		Total:  total,
	}, nil
}

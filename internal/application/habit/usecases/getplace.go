package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

type GetPlaceQuery struct {
	PlaceID uint
}

type GetPlaceUseCase struct {
	placeRepo habit.PlaceRepository
	logger    logger.Interface
}

func NewGetPlaceUseCase(placeRepo habit.PlaceRepository, logger logger.Interface) *GetPlaceUseCase {
	return &GetPlaceUseCase{placeRepo: placeRepo, logger: logger}
}

func (uc *GetPlaceUseCase) Execute(ctx context.Context, query GetPlaceQuery) (*dto.PlaceDTO, error) {
	p, err := uc.placeRepo.GetByID(ctx, query.PlaceID)
	if err != nil {
		uc.logger.Errorw("failed to get place", "error", err, "place_id", query.PlaceID)
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Place not found")
	}

	return dto.ToPlaceDTO(p), nil
}

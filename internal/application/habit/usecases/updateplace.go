package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

type UpdatePlaceCommand struct {
	PlaceID     uint
	Name        string
	Description string
}

type UpdatePlaceUseCase struct {
	placeRepo habit.PlaceRepository
	logger    logger.Interface
}

func NewUpdatePlaceUseCase(placeRepo habit.PlaceRepository, logger logger.Interface) *UpdatePlaceUseCase {
	return &UpdatePlaceUseCase{placeRepo: placeRepo, logger: logger}
}

func (uc *UpdatePlaceUseCase) Execute(ctx context.Context, cmd UpdatePlaceCommand) (*dto.PlaceDTO, error) {
	p, err := uc.placeRepo.GetByID(ctx, cmd.PlaceID)
	if err != nil {
		uc.logger.Errorw("failed to get place", "error", err, "place_id", cmd.PlaceID)
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Place not found")
	}

	if err := p.Update(cmd.Name, cmd.Description); err != nil {
		return nil, err
	}

	existing, err := uc.placeRepo.GetByName(ctx, p.Name())
	if err != nil {
		uc.logger.Errorw("failed to check place name", "error", err, "name", p.Name())
		return nil, fmt.Errorf("failed to check place name: %w", err)
	}
	if existing != nil && existing.ID() != p.ID() {
		return nil, errors.NewFieldValidationError(errors.FieldErrors{
			"name": "A place with this name already exists.",
		})
	}

	if err := uc.placeRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update place", "error", err, "place_id", cmd.PlaceID)
		return nil, fmt.Errorf("failed to update place: %w", err)
	}

	uc.logger.Infow("place updated", "place_id", p.ID(), "name", p.Name())
	return dto.ToPlaceDTO(p), nil
}

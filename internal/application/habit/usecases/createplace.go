package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/habit/dto"
	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

type CreatePlaceCommand struct {
	Name        string
	Description string
}

type CreatePlaceUseCase struct {
	placeRepo habit.PlaceRepository
	logger    logger.Interface
}

func NewCreatePlaceUseCase(placeRepo habit.PlaceRepository, logger logger.Interface) *CreatePlaceUseCase {
	return &CreatePlaceUseCase{placeRepo: placeRepo, logger: logger}
}

func (uc *CreatePlaceUseCase) Execute(ctx context.Context, cmd CreatePlaceCommand) (*dto.PlaceDTO, error) {
	p, err := habit.NewPlace(cmd.Name, cmd.Description)
	if err != nil {
		return nil, err
	}

	existing, err := uc.placeRepo.GetByName(ctx, p.Name())
	if err != nil {
		uc.logger.Errorw("failed to check place name", "error", err, "name", p.Name())
		return nil, fmt.Errorf("failed to check place name: %w", err)
	}
	if existing != nil {
		return nil, errors.NewFieldValidationError(errors.FieldErrors{
			"name": "A place with this name already exists.",
		})
	}

	if err := uc.placeRepo.Create(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewFieldValidationError(errors.FieldErrors{
				"name": "A place with this name already exists.",
			})
		}
		uc.logger.Errorw("failed to create place", "error", err, "name", p.Name())
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	uc.logger.Infow("place created", "place_id", p.ID(), "name", p.Name())
	return dto.ToPlaceDTO(p), nil
}

package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

type DeletePlaceCommand struct {
	PlaceID uint
}

// DeletePlaceUseCase removes a place. Habits performed there survive with
// the reference nulled; the database enforces the SET NULL semantics.
type DeletePlaceUseCase struct {
	placeRepo habit.PlaceRepository
	logger    logger.Interface
}

func NewDeletePlaceUseCase(placeRepo habit.PlaceRepository, logger logger.Interface) *DeletePlaceUseCase {
	return &DeletePlaceUseCase{placeRepo: placeRepo, logger: logger}
}

func (uc *DeletePlaceUseCase) Execute(ctx context.Context, cmd DeletePlaceCommand) error {
	p, err := uc.placeRepo.GetByID(ctx, cmd.PlaceID)
	if err != nil {
		uc.logger.Errorw("failed to get place", "error", err, "place_id", cmd.PlaceID)
		return fmt.Errorf("failed to get place: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("Place not found")
	}

	if err := uc.placeRepo.Delete(ctx, cmd.PlaceID); err != nil {
		uc.logger.Errorw("failed to delete place", "error", err, "place_id", cmd.PlaceID)
		return fmt.Errorf("failed to delete place: %w", err)
	}

	uc.logger.Infow("place deleted", "place_id", cmd.PlaceID, "name", p.Name())
	return nil
}

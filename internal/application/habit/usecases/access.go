package usecases

import (
	"context"
	"fmt"
	"time"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
)

// checkReadAccess classifies whether the actor may see the habit. A private
// habit owned by someone else is reported as not found rather than forbidden,
// so its existence never leaks.
func checkReadAccess(h *habit.Habit, actorID uint) error {
	if h == nil {
		return errors.NewNotFoundError("Habit not found")
	}
	if h.OwnerID() == actorID || h.IsPublic() {
		return nil
	}
	return errors.NewNotFoundError("Habit not found")
}

// checkWriteAccess classifies whether the actor may modify the habit. Writes
// are owner-only; a public habit owned by someone else is visible, so the
// denial is forbidden rather than not found.
func checkWriteAccess(h *habit.Habit, actorID uint) error {
	if h == nil {
		return errors.NewNotFoundError("Habit not found")
	}
	if h.OwnerID() == actorID {
		return nil
	}
	if h.IsPublic() {
		return errors.NewForbiddenError("You do not own this habit")
	}
	return errors.NewNotFoundError("Habit not found")
}

// resolvePlaceRef loads the place reference for the merged field set. A
// dangling place ID is a field-scoped validation failure, same shape as the
// habit business rules.
func resolvePlaceRef(ctx context.Context, placeRepo habit.PlaceRepository, placeID *uint) (*habit.PlaceRef, error) {
	if placeID == nil {
		return nil, nil
	}
	place, err := placeRepo.GetByID(ctx, *placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	if place == nil {
		return nil, errors.NewFieldValidationError(errors.FieldErrors{
			"place": "The place does not exist.",
		})
	}
	return place.Ref(), nil
}

// resolveRelatedRef loads the facts validation needs about the referenced
// habit. A dangling reference resolves to nil and the validation engine
// reports it.
func resolveRelatedRef(ctx context.Context, habitRepo habit.Repository, relatedID *uint) (*habit.RelatedRef, error) {
	if relatedID == nil {
		return nil, nil
	}
	related, err := habitRepo.GetByID(ctx, *relatedID)
	if err != nil {
		return nil, fmt.Errorf("failed to get related habit: %w", err)
	}
	if related == nil {
		return nil, nil
	}
	return &habit.RelatedRef{ID: related.ID(), IsPleasant: related.IsPleasant()}, nil
}

// secondsToDuration maps an optional duration in whole seconds onto the
// domain representation, keeping "not supplied" distinct from zero.
func secondsToDuration(seconds *int) *time.Duration {
	if seconds == nil {
		return nil
	}
	d := time.Duration(*seconds) * time.Second
	return &d
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
)

func TestCreatePlaceUseCase_Success(t *testing.T) {
	placeRepo := &mockPlaceRepository{
		CreateFunc: func(ctx context.Context, p *habit.Place) error {
			p.SetID(3)
			return nil
		},
	}
	uc := NewCreatePlaceUseCase(placeRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), CreatePlaceCommand{Name: "Office", Description: "where I work"})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.ID)
	assert.Equal(t, "Office", result.Name)
}

func TestCreatePlaceUseCase_DuplicateName(t *testing.T) {
	placeRepo := &mockPlaceRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*habit.Place, error) {
			return habit.ReconstructPlace(3, name, "", now(), now()), nil
		},
	}
	uc := NewCreatePlaceUseCase(placeRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), CreatePlaceCommand{Name: "Office"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "name")
}

func TestCreatePlaceUseCase_EmptyName(t *testing.T) {
	uc := NewCreatePlaceUseCase(&mockPlaceRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreatePlaceCommand{Name: "   "})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdatePlaceUseCase_RenameToTakenName(t *testing.T) {
	placeRepo := &mockPlaceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*habit.Place, error) {
			return habit.ReconstructPlace(3, "Office", "", now(), now()), nil
		},
		GetByNameFunc: func(ctx context.Context, name string) (*habit.Place, error) {
			return habit.ReconstructPlace(4, name, "", now(), now()), nil
		},
	}
	uc := NewUpdatePlaceUseCase(placeRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), UpdatePlaceCommand{PlaceID: 3, Name: "Gym"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "name")
}

func TestUpdatePlaceUseCase_RenameToOwnName(t *testing.T) {
	placeRepo := &mockPlaceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*habit.Place, error) {
			return habit.ReconstructPlace(3, "Office", "", now(), now()), nil
		},
		GetByNameFunc: func(ctx context.Context, name string) (*habit.Place, error) {
			return habit.ReconstructPlace(3, name, "", now(), now()), nil
		},
	}
	uc := NewUpdatePlaceUseCase(placeRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), UpdatePlaceCommand{PlaceID: 3, Name: "Office", Description: "updated"})

	require.NoError(t, err)
	assert.Equal(t, "updated", result.Description)
}

func TestDeletePlaceUseCase_NotFound(t *testing.T) {
	uc := NewDeletePlaceUseCase(&mockPlaceRepository{}, nopLogger{})

	err := uc.Execute(context.Background(), DeletePlaceCommand{PlaceID: 99})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListPlacesUseCase(t *testing.T) {
	placeRepo := &mockPlaceRepository{
		ListFunc: func(ctx context.Context, page, pageSize int) ([]*habit.Place, int64, error) {
			return []*habit.Place{
				habit.ReconstructPlace(1, "Home", "", now(), now()),
				habit.ReconstructPlace(2, "Office", "", now(), now()),
			}, 2, nil
		},
	}
	uc := NewListPlacesUseCase(placeRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), ListPlacesQuery{Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Len(t, result.Places, 2)
	assert.Equal(t, int64(2), result.Total)
}

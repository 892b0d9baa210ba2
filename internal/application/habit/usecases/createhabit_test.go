package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
)

func TestCreateHabitUseCase_Success(t *testing.T) {
	var created *habit.Habit
	habitRepo := &mockHabitRepository{
		CreateFunc: func(ctx context.Context, h *habit.Habit) error {
			h.SetID(10)
			created = h
			return nil
		},
	}
	placeRepo := &mockPlaceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*habit.Place, error) {
			p := habit.ReconstructPlace(3, "Office", "", now(), now())
			return p, nil
		},
	}

	uc := NewCreateHabitUseCase(habitRepo, placeRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), CreateHabitCommand{
		OwnerID:         42,
		PlaceID:         uintPtr(3),
		Time:            "12:00",
		Action:          "Drink water",
		Periodicity:     1,
		Reward:          "Watch a video",
		DurationSeconds: intPtr(60),
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(10), result.ID)
	assert.Equal(t, uint(42), result.OwnerID)
	assert.Equal(t, "I will drink water daily at 12:00 at Office", result.Title)
	assert.Equal(t, 60, result.DurationSeconds)
	require.NotNil(t, result.Place)
	assert.Equal(t, "Office", result.Place.Name)
}

func TestCreateHabitUseCase_InvalidTime(t *testing.T) {
	uc := NewCreateHabitUseCase(&mockHabitRepository{}, &mockPlaceRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateHabitCommand{
		OwnerID:         42,
		Time:            "noonish",
		Action:          "Drink water",
		Periodicity:     1,
		DurationSeconds: intPtr(60),
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "time")
}

func TestCreateHabitUseCase_UnknownPlace(t *testing.T) {
	placeRepo := &mockPlaceRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*habit.Place, error) {
			return nil, nil
		},
	}
	uc := NewCreateHabitUseCase(&mockHabitRepository{}, placeRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateHabitCommand{
		OwnerID:         42,
		PlaceID:         uintPtr(99),
		Time:            "12:00",
		Action:          "Drink water",
		Periodicity:     1,
		DurationSeconds: intPtr(60),
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "place")
}

func TestCreateHabitUseCase_RelatedMustExist(t *testing.T) {
	habitRepo := &mockHabitRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*habit.Habit, error) {
			return nil, nil
		},
	}
	uc := NewCreateHabitUseCase(habitRepo, &mockPlaceRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateHabitCommand{
		OwnerID:         42,
		Time:            "12:00",
		Action:          "Drink water",
		RelatedHabitID:  uintPtr(99),
		Periodicity:     1,
		DurationSeconds: intPtr(60),
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "The related habit does not exist.", appErr.Fields["related_habit"])
}

func TestCreateHabitUseCase_RelatedNotPleasant(t *testing.T) {
	habitRepo := &mockHabitRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*habit.Habit, error) {
			return newTestHabit(id, 42, false, false), nil
		},
	}
	uc := NewCreateHabitUseCase(habitRepo, &mockPlaceRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateHabitCommand{
		OwnerID:         42,
		Time:            "12:00",
		Action:          "Drink water",
		RelatedHabitID:  uintPtr(9),
		Periodicity:     1,
		DurationSeconds: intPtr(60),
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "The related habit must be marked as pleasant.", appErr.Fields["related_habit"])
}

func TestCreateHabitUseCase_MissingDuration(t *testing.T) {
	uc := NewCreateHabitUseCase(&mockHabitRepository{}, &mockPlaceRepository{}, nopLogger{})

	_, err := uc.Execute(context.Background(), CreateHabitCommand{
		OwnerID:     42,
		Time:        "12:00",
		Action:      "Drink water",
		Periodicity: 1,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Duration is required.", appErr.Fields["duration"])
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/errors"
)

func TestGetHabitUseCase_Visibility(t *testing.T) {
	tests := []struct {
		name         string
		habit        *habit.Habit
		actorID      uint
		wantErr      bool
		wantNotFound bool
	}{
		{
			name:    "owner sees own private habit",
			habit:   newTestHabit(1, 42, false, false),
			actorID: 42,
		},
		{
			name:    "stranger sees public habit",
			habit:   newTestHabit(1, 42, false, true),
			actorID: 7,
		},
		{
			name:         "stranger cannot see private habit",
			habit:        newTestHabit(1, 42, false, false),
			actorID:      7,
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name:         "missing habit",
			habit:        nil,
			actorID:      42,
			wantErr:      true,
			wantNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			habitRepo := &mockHabitRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*habit.Habit, error) {
					return tt.habit, nil
				},
			}
			uc := NewGetHabitUseCase(habitRepo, nopLogger{})

			result, err := uc.Execute(context.Background(), GetHabitQuery{HabitID: 1, ActorID: tt.actorID})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantNotFound, errors.IsNotFoundError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(1), result.ID)
		})
	}
}

func TestGetHabitUseCase_PrivateHabitMaskedAsNotFound(t *testing.T) {
	habitRepo := &mockHabitRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*habit.Habit, error) {
			return newTestHabit(1, 42, false, false), nil
		},
	}
	uc := NewGetHabitUseCase(habitRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), GetHabitQuery{HabitID: 1, ActorID: 7})

	// Existence of a private habit must not leak through the error type.
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, errors.IsForbiddenError(err))
}

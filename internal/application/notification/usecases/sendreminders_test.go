package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/domain/notification"
)

func activeProfile(userID uint, chatID int64) *notification.TelegramProfile {
	p := notification.NewTelegramProfile(userID, chatID, "")
	p.SetID(userID)
	return p
}

func TestSendRemindersUseCase_Dispatch(t *testing.T) {
	var queriedAt habit.TimeOfDay
	habitRepo := &mockHabitRepository{
		FindDueAtFunc: func(ctx context.Context, tod habit.TimeOfDay) ([]*habit.Habit, error) {
			queriedAt = tod
			return []*habit.Habit{
				newTestHabit(1, 42, "Drink water", "12:00"), // linked, active
				newTestHabit(2, 7, "Stretch", "12:00"),      // no profile
				newTestHabit(3, 9, "Read", "12:00"),         // inactive profile
			}, nil
		},
	}
	inactive := activeProfile(9, 3003)
	inactive.Deactivate()
	profileRepo := &mockProfileRepository{
		GetActiveByUserIDsFunc: func(ctx context.Context, userIDs []uint) (map[uint]*notification.TelegramProfile, error) {
			assert.ElementsMatch(t, []uint{42, 7, 9}, userIDs)
			return map[uint]*notification.TelegramProfile{
				42: activeProfile(42, 1001),
				9:  inactive,
			}, nil
		},
	}
	sender := &mockSender{ok: true}

	uc := NewSendRemindersUseCase(habitRepo, profileRepo, sender, nopLogger{})

	now := time.Date(2026, 3, 1, 12, 0, 37, 500, time.UTC)
	result, err := uc.Execute(context.Background(), now)

	require.NoError(t, err)
	// Seconds are truncated before matching.
	assert.Equal(t, "12:00", queriedAt.String())

	assert.Equal(t, 3, result.Matched)
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Delivered)

	require.Len(t, sender.calls, 1)
	assert.Equal(t, int64(1001), sender.calls[0].chatID)
	assert.Contains(t, sender.calls[0].text, "I will drink water daily at 12:00 wherever")
	assert.Contains(t, sender.calls[0].text, "Habit reminder")
}

func TestSendRemindersUseCase_SenderFailureDoesNotAbortBatch(t *testing.T) {
	habitRepo := &mockHabitRepository{
		FindDueAtFunc: func(ctx context.Context, tod habit.TimeOfDay) ([]*habit.Habit, error) {
			return []*habit.Habit{
				newTestHabit(1, 42, "Drink water", "08:30"),
				newTestHabit(2, 7, "Stretch", "08:30"),
			}, nil
		},
	}
	profileRepo := &mockProfileRepository{
		GetActiveByUserIDsFunc: func(ctx context.Context, userIDs []uint) (map[uint]*notification.TelegramProfile, error) {
			return map[uint]*notification.TelegramProfile{
				42: activeProfile(42, 1001),
				7:  activeProfile(7, 2002),
			}, nil
		},
	}
	sender := &mockSender{ok: false}

	uc := NewSendRemindersUseCase(habitRepo, profileRepo, sender, nopLogger{})

	result, err := uc.Execute(context.Background(), time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC))

	require.NoError(t, err)
	// Every reminder is attempted even when none are delivered.
	assert.Equal(t, 2, result.Attempted)
	assert.Equal(t, 0, result.Delivered)
	assert.Len(t, sender.calls, 2)
}

func TestSendRemindersUseCase_EmptyMinute(t *testing.T) {
	uc := NewSendRemindersUseCase(&mockHabitRepository{}, &mockProfileRepository{}, &mockSender{ok: true}, nopLogger{})

	result, err := uc.Execute(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Zero(t, result.Matched)
	assert.Zero(t, result.Attempted)
}

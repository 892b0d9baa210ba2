package usecases

import (
	"context"
	"fmt"
	"time"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/domain/notification"
	"atomichabits/internal/shared/biztime"
	"atomichabits/internal/shared/logger"
)

type SendRemindersResult struct {
	Matched   int // habits scheduled at this minute
	Attempted int // sender invocations
	Delivered int // sender invocations reported successful
}

// SendRemindersUseCase dispatches one reminder batch. It matches habits by
// time of day only; periodicity is not consulted, so a habit reminds every
// day at its scheduled minute.
type SendRemindersUseCase struct {
	habitRepo   habit.Repository
	profileRepo notification.ProfileRepository
	sender      Sender
	logger      logger.Interface
}

func NewSendRemindersUseCase(
	habitRepo habit.Repository,
	profileRepo notification.ProfileRepository,
	sender Sender,
	logger logger.Interface,
) *SendRemindersUseCase {
	return &SendRemindersUseCase{
		habitRepo:   habitRepo,
		profileRepo: profileRepo,
		sender:      sender,
		logger:      logger,
	}
}

// Execute processes the full batch for the given instant. now is truncated
// to the minute before matching. Sender failures affect only their own
// reminder and never abort the run.
func (uc *SendRemindersUseCase) Execute(ctx context.Context, now time.Time) (*SendRemindersResult, error) {
	current := habit.TimeOfDayFromClock(biztime.TruncateToMinute(now))

	habits, err := uc.habitRepo.FindDueAt(ctx, current)
	if err != nil {
		uc.logger.Errorw("failed to select due habits", "error", err, "time", current.String())
		return nil, fmt.Errorf("failed to select due habits: %w", err)
	}

	result := &SendRemindersResult{Matched: len(habits)}
	if len(habits) == 0 {
		return result, nil
	}

	// One profile query for the whole batch instead of one per habit.
	ownerIDs := make([]uint, 0, len(habits))
	for _, h := range habits {
		ownerIDs = append(ownerIDs, h.OwnerID())
	}
	profiles, err := uc.profileRepo.GetActiveByUserIDs(ctx, ownerIDs)
	if err != nil {
		uc.logger.Errorw("failed to get telegram profiles", "error", err)
		return nil, fmt.Errorf("failed to get telegram profiles: %w", err)
	}

	for _, h := range habits {
		profile, ok := profiles[h.OwnerID()]
		if !ok || !profile.IsActive() {
			continue
		}

		result.Attempted++
		if uc.sender.Send(ctx, profile.ChatID(), ReminderText(h)) {
			result.Delivered++
		} else {
			uc.logger.Warnw("reminder delivery failed", "habit_id", h.ID(), "chat_id", profile.ChatID())
		}
	}

	uc.logger.Infow("reminder batch dispatched",
		"time", current.String(),
		"matched", result.Matched,
		"attempted", result.Attempted,
		"delivered", result.Delivered,
	)
	return result, nil
}

// ReminderText renders the message body for one habit reminder. Telegram
// renders the markup with parse_mode=HTML.
func ReminderText(h *habit.Habit) string {
	return fmt.Sprintf(
		"⏰ <b>Habit reminder</b>\n\n%s\n\nDon't forget to complete it and track your progress! 💪",
		h.Title(),
	)
}

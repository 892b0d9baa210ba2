package telegram

import (
	"context"
	"time"

	"atomichabits/internal/shared/logger"
)

// ReminderSender adapts BotService to the dispatcher's delivery contract.
// A failed delivery is reported as false and logged, never as an error; one
// unreachable chat must not break the rest of the batch.
type ReminderSender struct {
	bot         *BotService
	sendTimeout time.Duration
	logger      logger.Interface
}

func NewReminderSender(bot *BotService, sendTimeoutSeconds int, log logger.Interface) *ReminderSender {
	if sendTimeoutSeconds <= 0 {
		sendTimeoutSeconds = 10
	}
	return &ReminderSender{
		bot:         bot,
		sendTimeout: time.Duration(sendTimeoutSeconds) * time.Second,
		logger:      log,
	}
}

// Send delivers one message and reports whether delivery succeeded.
func (s *ReminderSender) Send(ctx context.Context, chatID int64, text string) bool {
	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	if err := s.bot.SendHTML(sendCtx, chatID, text); err != nil {
		s.logger.Warnw("reminder delivery failed", "chat_id", chatID, "error", err)
		return false
	}
	return true
}

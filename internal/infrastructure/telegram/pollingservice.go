package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"atomichabits/internal/application/notification/usecases"
	"atomichabits/internal/domain/notification"
	"atomichabits/internal/shared/logger"
)

const (
	replyGreeting     = "Hi! Open the link from the AtomicHabits app to link your Telegram."
	replyHint         = "Send /start using the link from the app to link your account."
	replyUnknownToken = "❌ Invalid or unknown token. Generate a new link in the app."
	replyStaleToken   = "❌ The token has expired or was already used. Generate a new link in the app."
	replyInternal     = "Something went wrong. Please try again in a moment."
)

// PollingService long-polls getUpdates and redeems /start deep links. It is
// a separate process concern from the HTTP server; webhooks are deliberately
// out of scope.
type PollingService struct {
	bot         *BotService
	linker      *usecases.LinkAccountUseCase
	logger      logger.Interface
	pollTimeout int

	stopOnce sync.Once
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewPollingService(
	bot *BotService,
	linker *usecases.LinkAccountUseCase,
	pollTimeoutSeconds int,
	log logger.Interface,
) *PollingService {
	if pollTimeoutSeconds <= 0 {
		pollTimeoutSeconds = 30
	}
	return &PollingService{
		bot:         bot,
		linker:      linker,
		logger:      log,
		pollTimeout: pollTimeoutSeconds,
		stopChan:    make(chan struct{}),
	}
}

// Start runs the polling loop until the context is cancelled or Stop is
// called. It blocks the calling goroutine.
func (s *PollingService) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = s.pollTimeout
	updateConfig.AllowedUpdates = []string{"message"}

	updates := s.bot.api.GetUpdatesChan(updateConfig)

	s.logger.Infow("telegram polling started", "timeout", s.pollTimeout)

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return ctx.Err()
		case <-s.stopChan:
			s.shutdown()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			s.wg.Add(1)
			go func(u tgbotapi.Update) {
				defer s.wg.Done()
				s.handleUpdate(ctx, u)
			}(update)
		}
	}
}

// Stop requests shutdown and waits for in-flight updates to finish.
func (s *PollingService) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
}

func (s *PollingService) shutdown() {
	s.bot.api.StopReceivingUpdates()
	s.wg.Wait()
	s.logger.Infow("telegram polling stopped")
}

func (s *PollingService) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	chatID := msg.Chat.ID
	username := ""
	if msg.From != nil {
		username = msg.From.UserName
	}

	if !strings.HasPrefix(msg.Text, "/start") {
		s.reply(ctx, chatID, replyHint)
		return
	}

	result, err := s.linker.Execute(ctx, usecases.LinkAccountCommand{
		ChatID:   chatID,
		Username: username,
		Text:     msg.Text,
	})
	if err != nil {
		s.reply(ctx, chatID, linkErrorReply(err))
		if !isLinkUserError(err) {
			s.logger.Errorw("account linking failed", "chat_id", chatID, "error", err)
		}
		return
	}

	s.reply(ctx, chatID, fmt.Sprintf(
		"✅ Telegram linked to account %s.\nYou will now receive habit reminders.",
		result.LinkedUsername,
	))
}

func (s *PollingService) reply(ctx context.Context, chatID int64, text string) {
	if err := s.bot.SendHTML(ctx, chatID, text); err != nil {
		s.logger.Warnw("failed to send reply", "chat_id", chatID, "error", err)
	}
}

func linkErrorReply(err error) string {
	switch {
	case errors.Is(err, notification.ErrMissingToken):
		return replyGreeting
	case errors.Is(err, notification.ErrUnknownToken):
		return replyUnknownToken
	case errors.Is(err, notification.ErrTokenExpiredOrUsed):
		return replyStaleToken
	default:
		return replyInternal
	}
}

func isLinkUserError(err error) bool {
	return errors.Is(err, notification.ErrMissingToken) ||
		errors.Is(err, notification.ErrUnknownToken) ||
		errors.Is(err, notification.ErrTokenExpiredOrUsed)
}

// Package telegram wraps the Bot API client behind the application-layer
// contracts: a message sender for reminders and a long-polling loop that
// routes /start messages into the account linker.
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"atomichabits/internal/shared/config"
	"atomichabits/internal/shared/logger"
)

// BotService owns the tgbotapi client. Both the sender and the polling
// service share a single authorized client.
type BotService struct {
	api         *tgbotapi.BotAPI
	botUsername string
	logger      logger.Interface
}

// NewBotService authorizes against the Bot API. The HTTP client timeout
// bounds every sendMessage call; getUpdates uses its own long-poll timeout
// on top of it, so the client timeout must exceed the poll timeout.
func NewBotService(cfg config.TelegramConfig, log logger.Interface) (*BotService, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("telegram bot token is not configured")
	}

	clientTimeout := time.Duration(cfg.PollTimeoutSeconds+cfg.SendTimeoutSeconds) * time.Second
	client := &http.Client{Timeout: clientTimeout}

	endpoint := tgbotapi.APIEndpoint
	if cfg.APIBaseURL != "" {
		endpoint = cfg.APIBaseURL + "/bot%s/%s"
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}

	botUsername := cfg.BotUsername
	if botUsername == "" {
		botUsername = api.Self.UserName
	}

	log.Infow("telegram bot authorized", "username", api.Self.UserName)

	return &BotService{
		api:         api,
		botUsername: botUsername,
		logger:      log,
	}, nil
}

// BotUsername returns the username used for deep links.
func (s *BotService) BotUsername() string {
	return s.botUsername
}

// SendHTML delivers one HTML-formatted message to a chat. The context
// deadline is enforced even mid-request: a send that outlives ctx fails with
// the context error, it is never reported as delivered. The underlying HTTP
// request keeps the shared client as its hard upper bound.
func (s *BotService) SendHTML(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	errChan := make(chan error, 1)
	go func() {
		_, err := s.api.Send(msg)
		errChan <- err
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("sendMessage to chat %d abandoned: %w", chatID, ctx.Err())
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("sendMessage to chat %d failed: %w", chatID, err)
		}
		return nil
	}
}

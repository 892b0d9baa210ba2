package usecases

import (
	"context"
	"fmt"
	"time"

	"atomichabits/internal/domain/notification"
	"atomichabits/internal/shared/logger"
)

type IssueLinkTokenCommand struct {
	UserID uint
}

type IssueLinkTokenResult struct {
	Token     string
	DeepLink  string
	ExpiresAt time.Time
}

// IssueLinkTokenUseCase creates a fresh one-time link token for the user and
// renders the bot deep link. At most one live token exists per user: issuing
// deletes every prior unused token first.
type IssueLinkTokenUseCase struct {
	tokenRepo   notification.LinkTokenRepository
	generator   TokenGenerator
	botUsername string
	lifetime    time.Duration
	logger      logger.Interface
}

func NewIssueLinkTokenUseCase(
	tokenRepo notification.LinkTokenRepository,
	generator TokenGenerator,
	botUsername string,
	logger logger.Interface,
) *IssueLinkTokenUseCase {
	return NewIssueLinkTokenUseCaseWithLifetime(tokenRepo, generator, botUsername, notification.DefaultLinkTokenLifetime, logger)
}

// NewIssueLinkTokenUseCaseWithLifetime overrides the token lifetime, which
// the server wires from telegram.link_token_lifetime_minutes.
func NewIssueLinkTokenUseCaseWithLifetime(
	tokenRepo notification.LinkTokenRepository,
	generator TokenGenerator,
	botUsername string,
	lifetime time.Duration,
	logger logger.Interface,
) *IssueLinkTokenUseCase {
	return &IssueLinkTokenUseCase{
		tokenRepo:   tokenRepo,
		generator:   generator,
		botUsername: botUsername,
		lifetime:    lifetime,
		logger:      logger,
	}
}

func (uc *IssueLinkTokenUseCase) Execute(ctx context.Context, cmd IssueLinkTokenCommand) (*IssueLinkTokenResult, error) {
	if err := uc.tokenRepo.DeleteUnusedByUser(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete stale link tokens", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to delete stale link tokens: %w", err)
	}

	value, err := uc.generator.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate link token", "error", err)
		return nil, fmt.Errorf("failed to generate link token: %w", err)
	}

	token := notification.NewLinkTokenWithLifetime(cmd.UserID, value, uc.lifetime)
	if err := uc.tokenRepo.Create(ctx, token); err != nil {
		uc.logger.Errorw("failed to store link token", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to store link token: %w", err)
	}

	uc.logger.Infow("link token issued", "user_id", cmd.UserID, "expires_at", token.ExpiresAt())
	return &IssueLinkTokenResult{
		Token:     value,
		DeepLink:  fmt.Sprintf("https://t.me/%s?start=%s", uc.botUsername, value),
		ExpiresAt: token.ExpiresAt(),
	}, nil
}

package usecases

import (
	"context"
	"fmt"
	"strings"

	"atomichabits/internal/domain/notification"
	"atomichabits/internal/domain/user"
	"atomichabits/internal/shared/logger"
)

// LinkAccountCommand carries a /start message from a Telegram chat. Text is
// the full message, typically "/start <token>".
type LinkAccountCommand struct {
	ChatID   int64
	Username string
	Text     string
}

type LinkAccountResult struct {
	LinkedUsername string
}

// LinkAccountUseCase redeems a link token and binds the chat to the token's
// user. The profile upsert and the token consumption commit atomically, so a
// crash between them can never leave a half-linked account.
type LinkAccountUseCase struct {
	tokenRepo   notification.LinkTokenRepository
	profileRepo notification.ProfileRepository
	userRepo    user.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewLinkAccountUseCase(
	tokenRepo notification.LinkTokenRepository,
	profileRepo notification.ProfileRepository,
	userRepo user.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *LinkAccountUseCase {
	return &LinkAccountUseCase{
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *LinkAccountUseCase) Execute(ctx context.Context, cmd LinkAccountCommand) (*LinkAccountResult, error) {
	value := extractToken(cmd.Text)
	if value == "" {
		return nil, notification.ErrMissingToken
	}

	token, err := uc.tokenRepo.GetByToken(ctx, value)
	if err != nil {
		uc.logger.Errorw("failed to get link token", "error", err)
		return nil, fmt.Errorf("failed to get link token: %w", err)
	}
	if token == nil {
		return nil, notification.ErrUnknownToken
	}
	if !token.IsValid() {
		return nil, notification.ErrTokenExpiredOrUsed
	}

	owner, err := uc.userRepo.GetByID(ctx, token.UserID())
	if err != nil {
		uc.logger.Errorw("failed to get token owner", "error", err, "user_id", token.UserID())
		return nil, fmt.Errorf("failed to get token owner: %w", err)
	}
	if owner == nil {
		return nil, notification.ErrUnknownToken
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		profile, err := uc.profileRepo.GetByUserID(txCtx, token.UserID())
		if err != nil {
			return fmt.Errorf("failed to get telegram profile: %w", err)
		}
		if profile == nil {
			profile = notification.NewTelegramProfile(token.UserID(), cmd.ChatID, cmd.Username)
		} else {
			profile.Rebind(cmd.ChatID, cmd.Username)
		}
		if err := uc.profileRepo.Save(txCtx, profile); err != nil {
			return fmt.Errorf("failed to save telegram profile: %w", err)
		}

		token.MarkUsed()
		if err := uc.tokenRepo.Update(txCtx, token); err != nil {
			return fmt.Errorf("failed to mark token used: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to link telegram account", "error", err, "user_id", token.UserID())
		return nil, err
	}

	uc.logger.Infow("telegram account linked", "user_id", token.UserID(), "chat_id", cmd.ChatID)
	return &LinkAccountResult{LinkedUsername: owner.Username()}, nil
}

// extractToken pulls the payload out of a "/start <token>" message.
func extractToken(text string) string {
	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/user/dto"
	"atomichabits/internal/domain/user"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenUseCase struct {
	userRepo user.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(userRepo user.Repository, tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.AuthTokensDTO, error) {
	claims, err := uc.tokens.Verify(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}
	if claims.TokenType != "refresh" {
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}

	// The account must still exist at refresh time.
	u, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", claims.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &dto.AuthTokensDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

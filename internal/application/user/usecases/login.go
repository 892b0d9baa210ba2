package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/user/dto"
	"atomichabits/internal/domain/user"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	User   *dto.UserDTO
	Tokens *dto.AuthTokensDTO
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "username", cmd.Username)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	// The same error for a missing user and a wrong password, so login
	// probing cannot enumerate accounts.
	if u == nil {
		return nil, errors.NewUnauthorizedError("Invalid username or password")
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("Invalid username or password")
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Username())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", u.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())
	return &LoginResult{
		User: dto.ToUserDTO(u),
		Tokens: &dto.AuthTokensDTO{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    pair.ExpiresIn,
		},
	}, nil
}

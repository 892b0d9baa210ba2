package usecases

import (
	"context"
	"fmt"

	"atomichabits/internal/application/user/dto"
	"atomichabits/internal/domain/user"
	"atomichabits/internal/shared/errors"
	"atomichabits/internal/shared/logger"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

type RegisterUserCommand struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	if len(cmd.Password) < MinPasswordLength {
		return nil, errors.NewFieldValidationError(errors.FieldErrors{
			"password": fmt.Sprintf("Password must be at least %d characters long.", MinPasswordLength),
		})
	}
	if cmd.Password != cmd.PasswordConfirm {
		return nil, errors.NewFieldValidationError(errors.FieldErrors{
			"password": "Passwords do not match.",
		})
	}

	taken, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err, "username", cmd.Username)
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, errors.NewFieldValidationError(errors.FieldErrors{
			"username": "This username is already taken.",
		})
	}

	if cmd.Email != "" {
		taken, err = uc.userRepo.ExistsByEmail(ctx, cmd.Email)
		if err != nil {
			uc.logger.Errorw("failed to check email", "error", err)
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, errors.NewFieldValidationError(errors.FieldErrors{
				"email": "This email is already registered.",
			})
		}
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Username, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewFieldValidationError(errors.FieldErrors{
				"username": "This username is already taken.",
			})
		}
		uc.logger.Errorw("failed to create user", "error", err, "username", cmd.Username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "username", u.Username())
	return dto.ToUserDTO(u), nil
}

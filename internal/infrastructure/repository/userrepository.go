package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"atomichabits/internal/domain/user"
	"atomichabits/internal/infrastructure/persistence/models"
	"atomichabits/internal/shared/db"
	"atomichabits/internal/shared/logger"
)

// UserRepository implements the user repository interface on GORM
type UserRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(gdb *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{db: gdb, logger: logger}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "error", err, "username", model.Username)
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userToDomain(&model), nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by username", "error", err, "username", username)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userToDomain(&model), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}

func userToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func userToDomain(m *models.UserModel) *user.User {
	return user.ReconstructUser(m.ID, m.Username, m.Email, m.PasswordHash, m.CreatedAt, m.UpdatedAt)
}

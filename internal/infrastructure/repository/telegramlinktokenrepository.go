package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"atomichabits/internal/domain/notification"
	"atomichabits/internal/infrastructure/persistence/models"
	"atomichabits/internal/shared/db"
	"atomichabits/internal/shared/logger"
)

// TelegramLinkTokenRepository implements the link token repository on GORM
type TelegramLinkTokenRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewTelegramLinkTokenRepository creates a new link token repository
func NewTelegramLinkTokenRepository(gdb *gorm.DB, logger logger.Interface) notification.LinkTokenRepository {
	return &TelegramLinkTokenRepository{db: gdb, logger: logger}
}

func (r *TelegramLinkTokenRepository) Create(ctx context.Context, token *notification.LinkToken) error {
	model := linkTokenToModel(token)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create link token", "error", err, "user_id", model.UserID)
		return fmt.Errorf("failed to create link token: %w", err)
	}
	token.SetID(model.ID)
	return nil
}

func (r *TelegramLinkTokenRepository) GetByToken(ctx context.Context, value string) (*notification.LinkToken, error) {
	var model models.TelegramLinkTokenModel
	if err := db.GetTxFromContext(ctx, r.db).Where("token = ?", value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get link token", "error", err)
		return nil, fmt.Errorf("failed to get link token: %w", err)
	}
	return linkTokenToDomain(&model), nil
}

func (r *TelegramLinkTokenRepository) Update(ctx context.Context, token *notification.LinkToken) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.TelegramLinkTokenModel{}).
		Where("id = ?", token.ID()).
		Update("is_used", token.IsUsed())
	if result.Error != nil {
		r.logger.Errorw("failed to update link token", "error", result.Error, "id", token.ID())
		return fmt.Errorf("failed to update link token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("link token not found")
	}
	return nil
}

func (r *TelegramLinkTokenRepository) DeleteUnusedByUser(ctx context.Context, userID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND is_used = ?", userID, false).
		Delete(&models.TelegramLinkTokenModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete unused link tokens", "error", err, "user_id", userID)
		return fmt.Errorf("failed to delete unused link tokens: %w", err)
	}
	return nil
}

func linkTokenToModel(t *notification.LinkToken) *models.TelegramLinkTokenModel {
	return &models.TelegramLinkTokenModel{
		ID:        t.ID(),
		UserID:    t.UserID(),
		Token:     t.Token(),
		IsUsed:    t.IsUsed(),
		CreatedAt: t.CreatedAt(),
		ExpiresAt: t.ExpiresAt(),
	}
}

func linkTokenToDomain(m *models.TelegramLinkTokenModel) *notification.LinkToken {
	return notification.ReconstructLinkToken(m.ID, m.UserID, m.Token, m.IsUsed, m.CreatedAt, m.ExpiresAt)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"atomichabits/internal/domain/notification"
	"atomichabits/internal/infrastructure/persistence/models"
	"atomichabits/internal/shared/db"
	"atomichabits/internal/shared/logger"
)

// TelegramProfileRepository implements the telegram profile repository on GORM
type TelegramProfileRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewTelegramProfileRepository creates a new telegram profile repository
func NewTelegramProfileRepository(gdb *gorm.DB, logger logger.Interface) notification.ProfileRepository {
	return &TelegramProfileRepository{db: gdb, logger: logger}
}

func (r *TelegramProfileRepository) GetByUserID(ctx context.Context, userID uint) (*notification.TelegramProfile, error) {
	var model models.TelegramProfileModel
	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get telegram profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get telegram profile: %w", err)
	}
	return profileToDomain(&model), nil
}

func (r *TelegramProfileRepository) GetByChatID(ctx context.Context, chatID int64) (*notification.TelegramProfile, error) {
	var model models.TelegramProfileModel
	if err := db.GetTxFromContext(ctx, r.db).Where("chat_id = ?", chatID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get telegram profile", "error", err, "chat_id", chatID)
		return nil, fmt.Errorf("failed to get telegram profile: %w", err)
	}
	return profileToDomain(&model), nil
}

func (r *TelegramProfileRepository) GetActiveByUserIDs(ctx context.Context, userIDs []uint) (map[uint]*notification.TelegramProfile, error) {
	if len(userIDs) == 0 {
		return map[uint]*notification.TelegramProfile{}, nil
	}

	var profileModels []models.TelegramProfileModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Find(&profileModels).Error; err != nil {
		r.logger.Errorw("failed to get telegram profiles", "error", err)
		return nil, fmt.Errorf("failed to get telegram profiles: %w", err)
	}

	profiles := make(map[uint]*notification.TelegramProfile, len(profileModels))
	for i := range profileModels {
		profiles[profileModels[i].UserID] = profileToDomain(&profileModels[i])
	}
	return profiles, nil
}

// Save upserts on the unique user_id so re-linking rewrites the existing row.
func (r *TelegramProfileRepository) Save(ctx context.Context, profile *notification.TelegramProfile) error {
	model := profileToModel(profile)
	if err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"chat_id", "username", "is_active", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to save telegram profile", "error", err, "user_id", model.UserID)
		return fmt.Errorf("failed to save telegram profile: %w", err)
	}
	profile.SetID(model.ID)
	return nil
}

func (r *TelegramProfileRepository) Update(ctx context.Context, profile *notification.TelegramProfile) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.TelegramProfileModel{}).
		Where("user_id = ?", profile.UserID()).
		Updates(map[string]interface{}{
			"chat_id":    profile.ChatID(),
			"username":   profile.Username(),
			"is_active":  profile.IsActive(),
			"updated_at": profile.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update telegram profile", "error", result.Error, "user_id", profile.UserID())
		return fmt.Errorf("failed to update telegram profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("telegram profile not found")
	}
	return nil
}

func profileToModel(p *notification.TelegramProfile) *models.TelegramProfileModel {
	return &models.TelegramProfileModel{
		ID:        p.ID(),
		UserID:    p.UserID(),
		ChatID:    p.ChatID(),
		Username:  p.Username(),
		IsActive:  p.IsActive(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func profileToDomain(m *models.TelegramProfileModel) *notification.TelegramProfile {
	return notification.ReconstructTelegramProfile(
		m.ID, m.UserID, m.ChatID, m.Username, m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/infrastructure/persistence/models"
	"atomichabits/internal/shared/db"
	"atomichabits/internal/shared/logger"
)

// PlaceRepository implements the place repository interface on GORM
type PlaceRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(gdb *gorm.DB, logger logger.Interface) habit.PlaceRepository {
	return &PlaceRepository{db: gdb, logger: logger}
}

func (r *PlaceRepository) Create(ctx context.Context, p *habit.Place) error {
	model := placeToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create place", "error", err, "name", model.Name)
		return fmt.Errorf("failed to create place: %w", err)
	}
	p.SetID(model.ID)
	return nil
}

func (r *PlaceRepository) GetByID(ctx context.Context, id uint) (*habit.Place, error) {
	var model models.PlaceModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get place by ID", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	return placeToDomain(&model), nil
}

func (r *PlaceRepository) GetByName(ctx context.Context, name string) (*habit.Place, error) {
	var model models.PlaceModel
	if err := db.GetTxFromContext(ctx, r.db).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get place by name", "error", err, "name", name)
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	return placeToDomain(&model), nil
}

func (r *PlaceRepository) Update(ctx context.Context, p *habit.Place) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlaceModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":        p.Name(),
			"description": p.Description(),
			"updated_at":  p.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update place", "error", result.Error, "id", p.ID())
		return fmt.Errorf("failed to update place: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("place not found")
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.PlaceModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete place", "error", result.Error, "id", id)
		return fmt.Errorf("failed to delete place: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("place not found")
	}
	return nil
}

func (r *PlaceRepository) List(ctx context.Context, page, pageSize int) ([]*habit.Place, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.PlaceModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count places: %w", err)
	}

	var placeModels []models.PlaceModel
	if err := tx.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&placeModels).Error; err != nil {
		r.logger.Errorw("failed to list places", "error", err)
		return nil, 0, fmt.Errorf("failed to list places: %w", err)
	}

	places := make([]*habit.Place, 0, len(placeModels))
	for i := range placeModels {
		places = append(places, placeToDomain(&placeModels[i]))
	}
	return places, total, nil
}

func placeToModel(p *habit.Place) *models.PlaceModel {
	return &models.PlaceModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func placeToDomain(m *models.PlaceModel) *habit.Place {
	return habit.ReconstructPlace(m.ID, m.Name, m.Description, m.CreatedAt, m.UpdatedAt)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/infrastructure/persistence/models"
	"atomichabits/internal/shared/db"
	"atomichabits/internal/shared/logger"
)

// HabitRepository implements the habit repository interface on GORM. Every
// read preloads the place so titles render without extra queries.
type HabitRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewHabitRepository creates a new habit repository
func NewHabitRepository(gdb *gorm.DB, logger logger.Interface) habit.Repository {
	return &HabitRepository{db: gdb, logger: logger}
}

func (r *HabitRepository) Create(ctx context.Context, h *habit.Habit) error {
	model := habitToModel(h)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create habit", "error", err, "owner_id", model.UserID)
		return fmt.Errorf("failed to create habit: %w", err)
	}
	h.SetID(model.ID)
	return nil
}

func (r *HabitRepository) GetByID(ctx context.Context, id uint) (*habit.Habit, error) {
	var model models.HabitModel
	if err := db.GetTxFromContext(ctx, r.db).Preload("Place").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get habit by ID", "error", err, "id", id)
		return nil, fmt.Errorf("failed to get habit: %w", err)
	}
	return habitToDomain(&model)
}

func (r *HabitRepository) Update(ctx context.Context, h *habit.Habit) error {
	model := habitToModel(h)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.HabitModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"place_id":         model.PlaceID,
			"time":             model.Time,
			"action":           model.Action,
			"is_pleasant":      model.IsPleasant,
			"related_habit_id": model.RelatedHabitID,
			"periodicity_days": model.PeriodicityDays,
			"reward":           model.Reward,
			"duration_seconds": model.DurationSeconds,
			"is_public":        model.IsPublic,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update habit", "error", result.Error, "id", model.ID)
		return fmt.Errorf("failed to update habit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("habit not found")
	}
	return nil
}

func (r *HabitRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.HabitModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete habit", "error", result.Error, "id", id)
		return fmt.Errorf("failed to delete habit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("habit not found")
	}
	return nil
}

func (r *HabitRepository) ListByOwner(ctx context.Context, ownerID uint, page, pageSize int) ([]*habit.Habit, int64, error) {
	return r.list(ctx, "user_id = ?", []interface{}{ownerID}, page, pageSize)
}

func (r *HabitRepository) ListPublic(ctx context.Context, page, pageSize int) ([]*habit.Habit, int64, error) {
	return r.list(ctx, "is_public = ?", []interface{}{true}, page, pageSize)
}

func (r *HabitRepository) list(ctx context.Context, cond string, args []interface{}, page, pageSize int) ([]*habit.Habit, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.HabitModel{}).Where(cond, args...).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count habits: %w", err)
	}

	var habitModels []models.HabitModel
	if err := tx.Preload("Place").
		Where(cond, args...).
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&habitModels).Error; err != nil {
		r.logger.Errorw("failed to list habits", "error", err)
		return nil, 0, fmt.Errorf("failed to list habits: %w", err)
	}

	return habitsToDomain(habitModels, total)
}

func (r *HabitRepository) FindDueAt(ctx context.Context, t habit.TimeOfDay) ([]*habit.Habit, error) {
	var habitModels []models.HabitModel
	if err := db.GetTxFromContext(ctx, r.db).Preload("Place").
		Where("time = ?", t.String()).
		Find(&habitModels).Error; err != nil {
		r.logger.Errorw("failed to find due habits", "error", err, "time", t.String())
		return nil, fmt.Errorf("failed to find due habits: %w", err)
	}

	habits, _, err := habitsToDomain(habitModels, 0)
	return habits, err
}

func habitsToDomain(habitModels []models.HabitModel, total int64) ([]*habit.Habit, int64, error) {
	habits := make([]*habit.Habit, 0, len(habitModels))
	for i := range habitModels {
		h, err := habitToDomain(&habitModels[i])
		if err != nil {
			return nil, 0, err
		}
		habits = append(habits, h)
	}
	return habits, total, nil
}

func habitToModel(h *habit.Habit) *models.HabitModel {
	var placeID *uint
	if p := h.Place(); p != nil {
		id := p.ID
		placeID = &id
	}
	return &models.HabitModel{
		ID:              h.ID(),
		UserID:          h.OwnerID(),
		PlaceID:         placeID,
		Time:            h.TimeOfDay().String(),
		Action:          h.Action(),
		IsPleasant:      h.IsPleasant(),
		RelatedHabitID:  h.RelatedHabitID(),
		PeriodicityDays: h.Periodicity(),
		Reward:          h.Reward(),
		DurationSeconds: int(h.Duration() / time.Second),
		IsPublic:        h.IsPublic(),
		CreatedAt:       h.CreatedAt(),
		UpdatedAt:       h.UpdatedAt(),
	}
}

func habitToDomain(m *models.HabitModel) (*habit.Habit, error) {
	timeOfDay, err := habit.ParseTimeOfDay(m.Time)
	if err != nil {
		return nil, fmt.Errorf("corrupt time of day for habit %d: %w", m.ID, err)
	}

	var place *habit.PlaceRef
	if m.Place != nil {
		place = &habit.PlaceRef{ID: m.Place.ID, Name: m.Place.Name}
	}

	return habit.ReconstructHabit(
		m.ID,
		m.UserID,
		place,
		timeOfDay,
		m.Action,
		m.IsPleasant,
		m.RelatedHabitID,
		m.PeriodicityDays,
		m.Reward,
		time.Duration(m.DurationSeconds)*time.Second,
		m.IsPublic,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

// Package migration applies the database schema via GORM AutoMigrate.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"atomichabits/internal/infrastructure/persistence/models"
	"atomichabits/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in dependency order.
// Parent tables migrate before the tables holding foreign keys to them.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.PlaceModel{},
		&models.HabitModel{},
		&models.TelegramProfileModel{},
		&models.TelegramLinkTokenModel{},
	}
}

// Migrate applies the schema for all registered models.
func Migrate(db *gorm.DB, log logger.Interface) error {
	modelList := AutoMigrateModels()

	log.Infow("starting database migration", "models_count", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		log.Errorw("database migration failed", "error", err)
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Infow("database migration completed")
	return nil
}

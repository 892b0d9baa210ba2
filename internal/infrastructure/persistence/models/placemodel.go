package models

import (
	"time"

	"atomichabits/internal/shared/constants"
)

// PlaceModel represents the database persistence model for places
type PlaceModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PlaceModel) TableName() string {
	return constants.TablePlaces
}

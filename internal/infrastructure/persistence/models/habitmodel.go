package models

import (
	"time"

	"atomichabits/internal/shared/constants"
)

// HabitModel represents the database persistence model for habits.
// Deleting a user cascades to their habits; deleting a place or a related
// habit only nulls the weak reference.
type HabitModel struct {
	ID              uint       `gorm:"primarykey"`
	UserID          uint       `gorm:"not null;index"`
	User            *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	PlaceID         *uint      `gorm:"index"`
	Place           *PlaceModel `gorm:"foreignKey:PlaceID;constraint:OnDelete:SET NULL"`
	Time            string     `gorm:"not null;size:5;index"`
	Action          string     `gorm:"not null;size:255"`
	IsPleasant      bool       `gorm:"not null;default:false"`
	RelatedHabitID  *uint      `gorm:"index"`
	RelatedHabit    *HabitModel `gorm:"foreignKey:RelatedHabitID;constraint:OnDelete:SET NULL"`
	PeriodicityDays int        `gorm:"not null;default:1"`
	Reward          string     `gorm:"size:255"`
	DurationSeconds int        `gorm:"not null"`
	IsPublic        bool       `gorm:"not null;default:false;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (HabitModel) TableName() string {
	return constants.TableHabits
}

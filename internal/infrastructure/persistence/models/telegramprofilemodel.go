package models

import (
	"time"

	"atomichabits/internal/shared/constants"
)

// TelegramProfileModel represents the database persistence model for the
// user-to-chat binding. One profile per user, one user per chat.
type TelegramProfileModel struct {
	ID        uint       `gorm:"primarykey"`
	UserID    uint       `gorm:"uniqueIndex;not null"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ChatID    int64      `gorm:"uniqueIndex;not null"`
	Username  string     `gorm:"size:255"`
	IsActive  bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TelegramProfileModel) TableName() string {
	return constants.TableTelegramProfiles
}

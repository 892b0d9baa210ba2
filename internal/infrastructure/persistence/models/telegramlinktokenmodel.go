package models

import (
	"time"

	"atomichabits/internal/shared/constants"
)

// TelegramLinkTokenModel represents the database persistence model for
// one-time Telegram link tokens.
type TelegramLinkTokenModel struct {
	ID        uint       `gorm:"primarykey"`
	UserID    uint       `gorm:"not null;index"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Token     string     `gorm:"uniqueIndex;not null;size:64"`
	IsUsed    bool       `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TelegramLinkTokenModel) TableName() string {
	return constants.TableTelegramLinkTokens
}

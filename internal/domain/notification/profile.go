package notification

import (
	"time"

	"atomichabits/internal/shared/biztime"
)

// TelegramProfile links a user account to a Telegram chat. Each user has at
// most one profile and each chat binds at most one user.
type TelegramProfile struct {
	id        uint
	userID    uint
	chatID    int64
	username  string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewTelegramProfile creates an active profile binding a user to a chat.
func NewTelegramProfile(userID uint, chatID int64, username string) *TelegramProfile {
	now := biztime.NowUTC()
	return &TelegramProfile{
		userID:    userID,
		chatID:    chatID,
		username:  username,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstructTelegramProfile rebuilds a profile from persistence.
func ReconstructTelegramProfile(id, userID uint, chatID int64, username string, isActive bool, createdAt, updatedAt time.Time) *TelegramProfile {
	return &TelegramProfile{
		id:        id,
		userID:    userID,
		chatID:    chatID,
		username:  username,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters
func (p *TelegramProfile) ID() uint             { return p.id }
func (p *TelegramProfile) UserID() uint         { return p.userID }
func (p *TelegramProfile) ChatID() int64        { return p.chatID }
func (p *TelegramProfile) Username() string     { return p.username }
func (p *TelegramProfile) IsActive() bool       { return p.isActive }
func (p *TelegramProfile) CreatedAt() time.Time { return p.createdAt }
func (p *TelegramProfile) UpdatedAt() time.Time { return p.updatedAt }

// Rebind points the profile at a new chat. Re-linking reuses the existing
// profile row instead of creating a second one.
func (p *TelegramProfile) Rebind(chatID int64, username string) {
	p.chatID = chatID
	p.username = username
	p.isActive = true
	p.updatedAt = biztime.NowUTC()
}

// Deactivate suspends reminder delivery without unlinking the chat.
func (p *TelegramProfile) Deactivate() {
	p.isActive = false
	p.updatedAt = biztime.NowUTC()
}

// SetID sets the profile ID (only for persistence layer use)
func (p *TelegramProfile) SetID(id uint) {
	p.id = id
}

package notification

import "context"

// LinkTokenRepository defines the link token persistence interface
type LinkTokenRepository interface {
	Create(ctx context.Context, token *LinkToken) error
	GetByToken(ctx context.Context, token string) (*LinkToken, error)
	Update(ctx context.Context, token *LinkToken) error
	// DeleteUnusedByUser removes every unredeemed token issued to the user.
	// Issuing a new token invalidates all prior ones.
	DeleteUnusedByUser(ctx context.Context, userID uint) error
}

// ProfileRepository defines the telegram profile persistence interface
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*TelegramProfile, error)
	GetByChatID(ctx context.Context, chatID int64) (*TelegramProfile, error)
	// GetActiveByUserIDs returns the active profiles for the given users in
	// one query, keyed by user ID. Users without an active profile are absent.
	GetActiveByUserIDs(ctx context.Context, userIDs []uint) (map[uint]*TelegramProfile, error)
	// Save inserts the profile or updates the existing row for the same user.
	Save(ctx context.Context, profile *TelegramProfile) error
	Update(ctx context.Context, profile *TelegramProfile) error
}

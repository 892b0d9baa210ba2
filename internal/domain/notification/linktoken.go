package notification

import (
	"time"

	"atomichabits/internal/shared/biztime"
)

// DefaultLinkTokenLifetime is how long a freshly issued link token stays
// redeemable.
const DefaultLinkTokenLifetime = 30 * time.Minute

// LinkToken is a single-use credential that ties a Telegram chat to a user
// account. A token is redeemable while it is unused and unexpired.
type LinkToken struct {
	id        uint
	userID    uint
	token     string
	isUsed    bool
	createdAt time.Time
	expiresAt time.Time
}

// NewLinkToken issues a token for the given user with the default lifetime.
func NewLinkToken(userID uint, token string) *LinkToken {
	return NewLinkTokenWithLifetime(userID, token, DefaultLinkTokenLifetime)
}

// NewLinkTokenWithLifetime issues a token that expires after the given
// lifetime. A non-positive lifetime falls back to the default.
func NewLinkTokenWithLifetime(userID uint, token string, lifetime time.Duration) *LinkToken {
	if lifetime <= 0 {
		lifetime = DefaultLinkTokenLifetime
	}
	now := biztime.NowUTC()
	return &LinkToken{
		userID:    userID,
		token:     token,
		createdAt: now,
		expiresAt: now.Add(lifetime),
	}
}

// ReconstructLinkToken rebuilds a link token from persistence.
func ReconstructLinkToken(id, userID uint, token string, isUsed bool, createdAt, expiresAt time.Time) *LinkToken {
	return &LinkToken{
		id:        id,
		userID:    userID,
		token:     token,
		isUsed:    isUsed,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}
}

// Getters
func (t *LinkToken) ID() uint             { return t.id }
func (t *LinkToken) UserID() uint         { return t.userID }
func (t *LinkToken) Token() string        { return t.token }
func (t *LinkToken) IsUsed() bool         { return t.isUsed }
func (t *LinkToken) CreatedAt() time.Time { return t.createdAt }
func (t *LinkToken) ExpiresAt() time.Time { return t.expiresAt }

// IsValidAt reports whether the token can still be redeemed at the given
// instant.
func (t *LinkToken) IsValidAt(now time.Time) bool {
	return !t.isUsed && now.Before(t.expiresAt)
}

// IsValid reports whether the token can be redeemed right now.
func (t *LinkToken) IsValid() bool {
	return t.IsValidAt(biztime.NowUTC())
}

// MarkUsed consumes the token. Consuming is permanent.
func (t *LinkToken) MarkUsed() {
	t.isUsed = true
}

// SetID sets the token ID (only for persistence layer use)
func (t *LinkToken) SetID(id uint) {
	t.id = id
}

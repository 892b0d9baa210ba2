package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLinkToken(t *testing.T) {
	token := NewLinkToken(42, "abc123")

	assert.Equal(t, uint(42), token.UserID())
	assert.Equal(t, "abc123", token.Token())
	assert.False(t, token.IsUsed())
	assert.Equal(t, DefaultLinkTokenLifetime, token.ExpiresAt().Sub(token.CreatedAt()))
	assert.True(t, token.IsValid())
}

func TestLinkToken_IsValidAt(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	expires := issued.Add(DefaultLinkTokenLifetime)

	tests := []struct {
		name  string
		used  bool
		now   time.Time
		valid bool
	}{
		{"fresh token", false, issued.Add(time.Minute), true},
		{"just before expiry", false, expires.Add(-time.Second), true},
		{"exactly at expiry", false, expires, false},
		{"after expiry", false, expires.Add(time.Hour), false},
		{"used before expiry", true, issued.Add(time.Minute), false},
		{"used and expired", true, expires.Add(time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := ReconstructLinkToken(1, 42, "abc123", tt.used, issued, expires)
			assert.Equal(t, tt.valid, token.IsValidAt(tt.now))
		})
	}
}

func TestLinkToken_MarkUsed(t *testing.T) {
	token := NewLinkToken(42, "abc123")

	token.MarkUsed()

	assert.True(t, token.IsUsed())
	assert.False(t, token.IsValid())
}

func TestTelegramProfile_Rebind(t *testing.T) {
	profile := NewTelegramProfile(42, 1001, "old_name")
	profile.Deactivate()

	profile.Rebind(2002, "new_name")

	assert.Equal(t, int64(2002), profile.ChatID())
	assert.Equal(t, "new_name", profile.Username())
	assert.True(t, profile.IsActive())
}

func TestTelegramProfile_Deactivate(t *testing.T) {
	profile := NewTelegramProfile(42, 1001, "someone")

	profile.Deactivate()

	assert.False(t, profile.IsActive())
	assert.Equal(t, int64(1001), profile.ChatID())
}

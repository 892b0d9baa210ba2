package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomichabits/internal/domain/notification"
)

func TestIssueLinkTokenUseCase_Success(t *testing.T) {
	var deletedFor uint
	var created *notification.LinkToken
	tokenRepo := &mockLinkTokenRepository{
		DeleteUnusedByUserFunc: func(ctx context.Context, userID uint) error {
			deletedFor = userID
			return nil
		},
		CreateFunc: func(ctx context.Context, token *notification.LinkToken) error {
			token.SetID(1)
			created = token
			return nil
		},
	}
	uc := NewIssueLinkTokenUseCase(tokenRepo, &mockTokenGenerator{value: "abc123"}, "AtomicHabitsBot", nopLogger{})

	result, err := uc.Execute(context.Background(), IssueLinkTokenCommand{UserID: 42})

	require.NoError(t, err)
	// Prior unused tokens are swept before the new one is stored.
	assert.Equal(t, uint(42), deletedFor)
	require.NotNil(t, created)
	assert.Equal(t, "abc123", created.Token())
	assert.Equal(t, uint(42), created.UserID())
	assert.Equal(t, "abc123", result.Token)
	assert.Equal(t, "https://t.me/AtomicHabitsBot?start=abc123", result.DeepLink)
	assert.Equal(t, created.ExpiresAt(), result.ExpiresAt)
}

func TestIssueLinkTokenUseCase_ConfiguredLifetime(t *testing.T) {
	tests := []struct {
		name     string
		lifetime time.Duration
		want     time.Duration
	}{
		{"custom lifetime is honored", 5 * time.Minute, 5 * time.Minute},
		{"zero lifetime falls back to default", 0, notification.DefaultLinkTokenLifetime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *notification.LinkToken
			tokenRepo := &mockLinkTokenRepository{
				CreateFunc: func(ctx context.Context, token *notification.LinkToken) error {
					created = token
					return nil
				},
			}
			uc := NewIssueLinkTokenUseCaseWithLifetime(tokenRepo, &mockTokenGenerator{value: "abc123"}, "AtomicHabitsBot", tt.lifetime, nopLogger{})

			result, err := uc.Execute(context.Background(), IssueLinkTokenCommand{UserID: 42})

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tt.want, created.ExpiresAt().Sub(created.CreatedAt()))
			assert.Equal(t, created.ExpiresAt(), result.ExpiresAt)
		})
	}
}

func TestIssueLinkTokenUseCase_SweepFailureAborts(t *testing.T) {
	tokenRepo := &mockLinkTokenRepository{
		DeleteUnusedByUserFunc: func(ctx context.Context, userID uint) error {
			return errBoom
		},
	}
	uc := NewIssueLinkTokenUseCase(tokenRepo, &mockTokenGenerator{}, "AtomicHabitsBot", nopLogger{})

	_, err := uc.Execute(context.Background(), IssueLinkTokenCommand{UserID: 42})

	require.Error(t, err)
}

func TestIssueLinkTokenUseCase_GeneratorFailure(t *testing.T) {
	uc := NewIssueLinkTokenUseCase(&mockLinkTokenRepository{}, &mockTokenGenerator{err: errBoom}, "AtomicHabitsBot", nopLogger{})

	_, err := uc.Execute(context.Background(), IssueLinkTokenCommand{UserID: 42})

	require.Error(t, err)
}

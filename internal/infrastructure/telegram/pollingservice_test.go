package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"atomichabits/internal/domain/notification"
)

func TestLinkErrorReply(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing token gets greeting", notification.ErrMissingToken, replyGreeting},
		{"unknown token", notification.ErrUnknownToken, replyUnknownToken},
		{"expired or used token", notification.ErrTokenExpiredOrUsed, replyStaleToken},
		{"unexpected error", assert.AnError, replyInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, linkErrorReply(tt.err))
		})
	}
}

func TestIsLinkUserError(t *testing.T) {
	assert.True(t, isLinkUserError(notification.ErrUnknownToken))
	assert.True(t, isLinkUserError(notification.ErrMissingToken))
	assert.True(t, isLinkUserError(notification.ErrTokenExpiredOrUsed))
	assert.False(t, isLinkUserError(assert.AnError))
}

package notification

import "errors"

var (
	// ErrMissingToken indicates a /start command arrived without a token
	ErrMissingToken = errors.New("link token is missing")

	// ErrUnknownToken indicates the presented token matches no issued token
	ErrUnknownToken = errors.New("unknown link token")

	// ErrTokenExpiredOrUsed indicates the token exists but is no longer redeemable
	ErrTokenExpiredOrUsed = errors.New("link token expired or already used")
)

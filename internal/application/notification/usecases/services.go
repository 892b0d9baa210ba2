package usecases

import "context"

// TokenGenerator produces opaque URL-safe link token values.
type TokenGenerator interface {
	Generate() (string, error)
}

// Sender delivers one message to one Telegram chat. It reports success as a
// bool; delivery failure is never an error that aborts a batch.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) bool
}

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

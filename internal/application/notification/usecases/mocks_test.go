package usecases

import (
	"context"
	"fmt"
	"time"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/domain/notification"
	"atomichabits/internal/domain/user"
	"atomichabits/internal/shared/logger"
)

type mockLinkTokenRepository struct {
	CreateFunc             func(ctx context.Context, token *notification.LinkToken) error
	GetByTokenFunc         func(ctx context.Context, token string) (*notification.LinkToken, error)
	UpdateFunc             func(ctx context.Context, token *notification.LinkToken) error
	DeleteUnusedByUserFunc func(ctx context.Context, userID uint) error
}

func (m *mockLinkTokenRepository) Create(ctx context.Context, token *notification.LinkToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *mockLinkTokenRepository) GetByToken(ctx context.Context, token string) (*notification.LinkToken, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockLinkTokenRepository) Update(ctx context.Context, token *notification.LinkToken) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token)
	}
	return nil
}

func (m *mockLinkTokenRepository) DeleteUnusedByUser(ctx context.Context, userID uint) error {
	if m.DeleteUnusedByUserFunc != nil {
		return m.DeleteUnusedByUserFunc(ctx, userID)
	}
	return nil
}

type mockProfileRepository struct {
	GetByUserIDFunc        func(ctx context.Context, userID uint) (*notification.TelegramProfile, error)
	GetByChatIDFunc        func(ctx context.Context, chatID int64) (*notification.TelegramProfile, error)
	GetActiveByUserIDsFunc func(ctx context.Context, userIDs []uint) (map[uint]*notification.TelegramProfile, error)
	SaveFunc               func(ctx context.Context, profile *notification.TelegramProfile) error
	UpdateFunc             func(ctx context.Context, profile *notification.TelegramProfile) error
}

func (m *mockProfileRepository) GetByUserID(ctx context.Context, userID uint) (*notification.TelegramProfile, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepository) GetByChatID(ctx context.Context, chatID int64) (*notification.TelegramProfile, error) {
	if m.GetByChatIDFunc != nil {
		return m.GetByChatIDFunc(ctx, chatID)
	}
	return nil, nil
}

func (m *mockProfileRepository) GetActiveByUserIDs(ctx context.Context, userIDs []uint) (map[uint]*notification.TelegramProfile, error) {
	if m.GetActiveByUserIDsFunc != nil {
		return m.GetActiveByUserIDsFunc(ctx, userIDs)
	}
	return map[uint]*notification.TelegramProfile{}, nil
}

func (m *mockProfileRepository) Save(ctx context.Context, profile *notification.TelegramProfile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, profile *notification.TelegramProfile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, profile)
	}
	return nil
}

type mockHabitRepository struct {
	FindDueAtFunc func(ctx context.Context, t habit.TimeOfDay) ([]*habit.Habit, error)
}

func (m *mockHabitRepository) Create(ctx context.Context, h *habit.Habit) error  { return nil }
func (m *mockHabitRepository) Update(ctx context.Context, h *habit.Habit) error  { return nil }
func (m *mockHabitRepository) Delete(ctx context.Context, id uint) error         { return nil }
func (m *mockHabitRepository) GetByID(ctx context.Context, id uint) (*habit.Habit, error) {
	return nil, nil
}
func (m *mockHabitRepository) ListByOwner(ctx context.Context, ownerID uint, page, pageSize int) ([]*habit.Habit, int64, error) {
	return nil, 0, nil
}
func (m *mockHabitRepository) ListPublic(ctx context.Context, page, pageSize int) ([]*habit.Habit, int64, error) {
	return nil, 0, nil
}
func (m *mockHabitRepository) FindDueAt(ctx context.Context, t habit.TimeOfDay) ([]*habit.Habit, error) {
	if m.FindDueAtFunc != nil {
		return m.FindDueAtFunc(ctx, t)
	}
	return nil, nil
}

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}
func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

type mockTokenGenerator struct {
	value string
	err   error
}

func (m *mockTokenGenerator) Generate() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.value != "" {
		return m.value, nil
	}
	return "generated-token", nil
}

// sendCall records one Sender invocation.
type sendCall struct {
	chatID int64
	text   string
}

type mockSender struct {
	ok    bool
	calls []sendCall
}

func (m *mockSender) Send(ctx context.Context, chatID int64, text string) bool {
	m.calls = append(m.calls, sendCall{chatID: chatID, text: text})
	return m.ok
}

// passthroughTxManager runs the function directly without a real database.
type passthroughTxManager struct {
	err error
}

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

var errBoom = fmt.Errorf("boom")

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)            {}
func (nopLogger) Info(string, ...any)             {}
func (nopLogger) Warn(string, ...any)             {}
func (nopLogger) Error(string, ...any)            {}
func (l nopLogger) With(...any) logger.Interface  { return l }
func (l nopLogger) Named(string) logger.Interface { return l }
func (nopLogger) Debugw(string, ...interface{})   {}
func (nopLogger) Infow(string, ...interface{})    {}
func (nopLogger) Warnw(string, ...interface{})    {}
func (nopLogger) Errorw(string, ...interface{})   {}

func newTestHabit(id, ownerID uint, action, timeOfDay string) *habit.Habit {
	d := 60 * time.Second
	f := habit.Fields{
		Time:        mustTimeOfDay(timeOfDay),
		Action:      action,
		Periodicity: 1,
		Duration:    &d,
	}
	h, err := habit.NewHabit(ownerID, f, nil, nil)
	if err != nil {
		panic(err)
	}
	h.SetID(id)
	return h
}

func mustTimeOfDay(s string) habit.TimeOfDay {
	t, err := habit.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

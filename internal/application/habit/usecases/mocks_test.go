package usecases

import (
	"context"
	"time"

	"atomichabits/internal/domain/habit"
	"atomichabits/internal/shared/logger"
)

func now() time.Time { return time.Now().UTC() }

type mockHabitRepository struct {
	CreateFunc      func(ctx context.Context, h *habit.Habit) error
	GetByIDFunc     func(ctx context.Context, id uint) (*habit.Habit, error)
	UpdateFunc      func(ctx context.Context, h *habit.Habit) error
	DeleteFunc      func(ctx context.Context, id uint) error
	ListByOwnerFunc func(ctx context.Context, ownerID uint, page, pageSize int) ([]*habit.Habit, int64, error)
	ListPublicFunc  func(ctx context.Context, page, pageSize int) ([]*habit.Habit, int64, error)
	FindDueAtFunc   func(ctx context.Context, t habit.TimeOfDay) ([]*habit.Habit, error)
}

func (m *mockHabitRepository) Create(ctx context.Context, h *habit.Habit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, h)
	}
	return nil
}

func (m *mockHabitRepository) GetByID(ctx context.Context, id uint) (*habit.Habit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHabitRepository) Update(ctx context.Context, h *habit.Habit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, h)
	}
	return nil
}

func (m *mockHabitRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockHabitRepository) ListByOwner(ctx context.Context, ownerID uint, page, pageSize int) ([]*habit.Habit, int64, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockHabitRepository) ListPublic(ctx context.Context, page, pageSize int) ([]*habit.Habit, int64, error) {
	if m.ListPublicFunc != nil {
		return m.ListPublicFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockHabitRepository) FindDueAt(ctx context.Context, t habit.TimeOfDay) ([]*habit.Habit, error) {
	if m.FindDueAtFunc != nil {
		return m.FindDueAtFunc(ctx, t)
	}
	return nil, nil
}

type mockPlaceRepository struct {
	CreateFunc    func(ctx context.Context, p *habit.Place) error
	GetByIDFunc   func(ctx context.Context, id uint) (*habit.Place, error)
	GetByNameFunc func(ctx context.Context, name string) (*habit.Place, error)
	UpdateFunc    func(ctx context.Context, p *habit.Place) error
	DeleteFunc    func(ctx context.Context, id uint) error
	ListFunc      func(ctx context.Context, page, pageSize int) ([]*habit.Place, int64, error)
}

func (m *mockPlaceRepository) Create(ctx context.Context, p *habit.Place) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlaceRepository) GetByID(ctx context.Context, id uint) (*habit.Place, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlaceRepository) GetByName(ctx context.Context, name string) (*habit.Place, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockPlaceRepository) Update(ctx context.Context, p *habit.Place) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPlaceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPlaceRepository) List(ctx context.Context, page, pageSize int) ([]*habit.Place, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any)           {}
func (nopLogger) Info(string, ...any)            {}
func (nopLogger) Warn(string, ...any)            {}
func (nopLogger) Error(string, ...any)           {}
func (l nopLogger) With(...any) logger.Interface { return l }
func (l nopLogger) Named(string) logger.Interface {
	return l
}
func (nopLogger) Debugw(string, ...interface{}) {}
func (nopLogger) Infow(string, ...interface{})  {}
func (nopLogger) Warnw(string, ...interface{})  {}
func (nopLogger) Errorw(string, ...interface{}) {}

func intPtr(v int) *int          { return &v }
func uintPtr(v uint) *uint       { return &v }
func strPtr(v string) *string    { return &v }
func boolPtr(v bool) *bool       { return &v }

func newTestHabit(id, ownerID uint, isPleasant, isPublic bool) *habit.Habit {
	f := habit.Fields{
		Time:        mustTimeOfDay("12:00"),
		Action:      "Drink water",
		IsPleasant:  isPleasant,
		Periodicity: 1,
		Duration:    secondsToDuration(intPtr(60)),
		IsPublic:    isPublic,
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

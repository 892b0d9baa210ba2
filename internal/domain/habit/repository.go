package habit

import "context"

// Repository defines the persistence interface for habits. Implementations
// must resolve the place reference eagerly so callers never perform per-row
// lookups to render titles.
type Repository interface {
	// Create persists a new habit
	Create(ctx context.Context, h *Habit) error

	// GetByID retrieves a habit by ID regardless of owner. Visibility
	// classification is the caller's concern.
	GetByID(ctx context.Context, id uint) (*Habit, error)

	// Update persists a modified habit
	Update(ctx context.Context, h *Habit) error

	// Delete removes a habit by ID
	Delete(ctx context.Context, id uint) error

	// ListByOwner returns the owner's habits ordered newest first, with the
	// total count for pagination.
	ListByOwner(ctx context.Context, ownerID uint, page, pageSize int) ([]*Habit, int64, error)

	// ListPublic returns public habits ordered newest first, with the total count.
	ListPublic(ctx context.Context, page, pageSize int) ([]*Habit, int64, error)

	// FindDueAt returns every habit scheduled at the given minute of day.
	FindDueAt(ctx context.Context, t TimeOfDay) ([]*Habit, error)
}

// PlaceRepository defines the persistence interface for places.
type PlaceRepository interface {
	Create(ctx context.Context, p *Place) error
	GetByID(ctx context.Context, id uint) (*Place, error)
	GetByName(ctx context.Context, name string) (*Place, error)
	Update(ctx context.Context, p *Place) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, page, pageSize int) ([]*Place, int64, error)
}

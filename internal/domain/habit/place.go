package habit

import (
	"strings"
	"time"

	"atomichabits/internal/shared/biztime"
	"atomichabits/internal/shared/errors"
)

// MaxPlaceNameLength bounds the place name.
const MaxPlaceNameLength = 100

// Place is a catalog entry for where habits are performed (home, office,
// gym, park). Habits reference it weakly: deleting a place nulls the
// reference and never cascades.
type Place struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPlace creates a new place with a unique short name.
func NewPlace(name, description string) (*Place, error) {
	if err := validatePlaceName(name); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Place{
		name:        strings.TrimSpace(name),
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructPlace rebuilds a place from persistence.
func ReconstructPlace(id uint, name, description string, createdAt, updatedAt time.Time) *Place {
	return &Place{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Getters
func (p *Place) ID() uint             { return p.id }
func (p *Place) Name() string         { return p.name }
func (p *Place) Description() string  { return p.description }
func (p *Place) CreatedAt() time.Time { return p.createdAt }
func (p *Place) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the place ID (only for persistence layer use)
func (p *Place) SetID(id uint) {
	p.id = id
}

// Update renames the place and replaces its description.
func (p *Place) Update(name, description string) error {
	if err := validatePlaceName(name); err != nil {
		return err
	}
	p.name = strings.TrimSpace(name)
	p.description = description
	p.updatedAt = biztime.NowUTC()
	return nil
}

// Ref returns the weak reference habits hold onto.
func (p *Place) Ref() *PlaceRef {
	return &PlaceRef{ID: p.id, Name: p.name}
}

func validatePlaceName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.NewFieldValidationError(errors.FieldErrors{
			"name": "Place name is required.",
		})
	}
	if len([]rune(trimmed)) > MaxPlaceNameLength {
		return errors.NewFieldValidationError(errors.FieldErrors{
			"name": "Place name must be at most 100 characters long.",
		})
	}
	return nil
}

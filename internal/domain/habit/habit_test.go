package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atomichabits/internal/shared/errors"
)

func TestNewHabit(t *testing.T) {
	f := validFields()
	f.Reward = "Watch a video"

	h, err := NewHabit(42, f, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, uint(42), h.OwnerID())
	assert.Equal(t, "Drink water", h.Action())
	assert.Equal(t, 60*time.Second, h.Duration())
	assert.False(t, h.IsPleasant())
}

func TestNewHabit_RequiresOwner(t *testing.T) {
	_, err := NewHabit(0, validFields(), nil, nil)
	assert.Error(t, err)
}

func TestNewHabit_InvalidFields(t *testing.T) {
	f := validFields()
	f.Duration = nil

	_, err := NewHabit(42, f, nil, nil)

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "duration")
}

func TestHabit_ApplyUpdate(t *testing.T) {
	h, err := NewHabit(42, validFields(), nil, nil)
	require.NoError(t, err)
	h.SetID(7)

	f := h.Fields()
	f.Action = "Stretch"
	f.Periodicity = 2
	require.NoError(t, h.ApplyUpdate(f, nil, nil))

	assert.Equal(t, "Stretch", h.Action())
	assert.Equal(t, 2, h.Periodicity())
	assert.Equal(t, uint(42), h.OwnerID())
}

func TestHabit_ApplyUpdate_RejectsSelfReference(t *testing.T) {
	h, err := NewHabit(42, validFields(), nil, nil)
	require.NoError(t, err)
	h.SetID(7)

	f := h.Fields()
	f.RelatedHabitID = uintPtr(7)
	err = h.ApplyUpdate(f, nil, &RelatedRef{ID: 7, IsPleasant: false})

	require.Error(t, err)
	assert.Equal(t, "Drink water", h.Action())
}

func TestHabit_Fields_RoundTrip(t *testing.T) {
	f := validFields()
	f.Reward = "Tea"
	f.IsPublic = true
	h, err := NewHabit(42, f, &PlaceRef{ID: 3, Name: "Office"}, nil)
	require.NoError(t, err)

	got := h.Fields()

	require.NotNil(t, got.PlaceID)
	assert.Equal(t, uint(3), *got.PlaceID)
	assert.Equal(t, "Tea", got.Reward)
	assert.True(t, got.IsPublic)
	require.NotNil(t, got.Duration)
	assert.Equal(t, 60*time.Second, *got.Duration)
}

func TestHabit_ClearPlace(t *testing.T) {
	h, err := NewHabit(42, validFields(), &PlaceRef{ID: 3, Name: "Office"}, nil)
	require.NoError(t, err)

	h.ClearPlace()

	assert.Nil(t, h.Place())
}

func TestHabit_Title(t *testing.T) {
	tests := []struct {
		name        string
		action      string
		periodicity int
		tod         TimeOfDay
		place       *PlaceRef
		want        string
	}{
		{
			name:        "daily with place",
			action:      "Drink water",
			periodicity: 1,
			tod:         TimeOfDay{hour: 12, minute: 0},
			place:       &PlaceRef{ID: 3, Name: "Office"},
			want:        "I will drink water daily at 12:00 at Office",
		},
		{
			name:        "weekly without place",
			action:      "Call parents",
			periodicity: 7,
			tod:         TimeOfDay{hour: 18, minute: 30},
			want:        "I will call parents weekly at 18:30 wherever",
		},
		{
			name:        "every N days",
			action:      "Go running",
			periodicity: 3,
			tod:         TimeOfDay{hour: 7, minute: 5},
			want:        "I will go running every 3 days at 07:05 wherever",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			f.Action = tt.action
			f.Periodicity = tt.periodicity
			f.Time = tt.tod

			h, err := NewHabit(42, f, tt.place, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.want, h.Title())
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, tod.Hour())
	assert.Equal(t, 30, tod.Minute())
	assert.Equal(t, "09:30", tod.String())

	tod, err = ParseTimeOfDay("21:15:45")
	require.NoError(t, err)
	assert.Equal(t, "21:15", tod.String())

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("noon")
	assert.Error(t, err)
}

func TestTimeOfDayFromClock(t *testing.T) {
	clock := time.Date(2026, 3, 1, 14, 42, 59, 999, time.UTC)
	assert.Equal(t, "14:42", TimeOfDayFromClock(clock).String())
}

func TestPlace_NameValidation(t *testing.T) {
	_, err := NewPlace("  ", "")
	assert.Error(t, err)

	long := make([]rune, MaxPlaceNameLength+1)
	for i := range long {
		long[i] = 'x'
	}
	_, err = NewPlace(string(long), "")
	assert.Error(t, err)

	p, err := NewPlace("  Office  ", "where I work")
	require.NoError(t, err)
	assert.Equal(t, "Office", p.Name())
}

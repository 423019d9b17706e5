package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSlotAssignsDraftKey(t *testing.T) {
	var v Venue
	s := v.AddSlot(Slot{Day: "Fri", Name: "Evening", Start: "18:00", End: "22:00"})

	assert.NotEmpty(t, s.ID)
	require.Len(t, v.AvailableSlots, 1)

	other := v.AddSlot(Slot{Day: "Sat", Name: "Night", Start: "22:00", End: "02:00"})
	assert.NotEqual(t, s.ID, other.ID)
}

func TestRemoveSlotByPosition(t *testing.T) {
	var v Venue
	v.AddSlot(Slot{Day: "Fri", Name: "Evening", Start: "18:00", End: "22:00"})
	v.AddSlot(Slot{Day: "Sat", Name: "Brunch", Start: "11:00", End: "15:00"})

	require.NoError(t, v.RemoveSlot(0))
	require.Len(t, v.AvailableSlots, 1)
	assert.Equal(t, "Brunch", v.AvailableSlots[0].Name)

	assert.Error(t, v.RemoveSlot(5))
	assert.Error(t, v.RemoveSlot(-1))
}

func TestSlotsRoundTripWithoutDraftKeys(t *testing.T) {
	var v Venue
	v.AddSlot(Slot{Day: "Fri", Name: "Evening", Start: "18:00", End: "22:00"})
	v.AddSlot(Slot{Day: "Sun", Name: "Matinee", Start: "14:00", End: "18:00"})

	raw, err := v.SlotsJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), v.AvailableSlots[0].ID, "draft keys must not persist")

	var restored Venue
	require.NoError(t, restored.ScanSlots(raw))
	require.Len(t, restored.AvailableSlots, 2)

	assert.Equal(t, "Fri", restored.AvailableSlots[0].Day)
	assert.Equal(t, "Evening", restored.AvailableSlots[0].Name)
	assert.Equal(t, "18:00", restored.AvailableSlots[0].Start)
	assert.Equal(t, "22:00", restored.AvailableSlots[0].End)
	assert.Equal(t, "Matinee", restored.AvailableSlots[1].Name)
}

func TestSlotsJSONEmptyList(t *testing.T) {
	var v Venue
	raw, err := v.SlotsJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	require.NoError(t, v.ScanSlots(nil))
	assert.Empty(t, v.AvailableSlots)
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlots(t *testing.T) {
	all := Slots()
	assert.Len(t, all, 9)

	// Ordered, hourly, each slot's start matching the previous slot's end.
	for i, s := range all {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, s.StartTime+" - "+s.EndTime, s.Label)
		if i > 0 {
			assert.Equal(t, all[i-1].EndTime, s.StartTime)
		}
	}
	assert.Equal(t, "8:00 AM", all[0].StartTime)
	assert.Equal(t, "5:00 PM", all[len(all)-1].EndTime)
}

func TestSlotsReturnsCopy(t *testing.T) {
	first := Slots()
	first[0].Label = "mutated"

	again := Slots()
	assert.Equal(t, "8:00 AM - 9:00 AM", again[0].Label)
}

func TestByLabel(t *testing.T) {
	s, ok := ByLabel("9:00 AM - 10:00 AM")
	assert.True(t, ok)
	assert.Equal(t, 2, s.ID)

	_, ok = ByLabel("9:00 PM - 10:00 PM")
	assert.False(t, ok)
}

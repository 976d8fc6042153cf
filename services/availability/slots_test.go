package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotbook/models"
)

var day = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func interval(startH, startM, endH, endM int) models.TimeInterval {
	return models.TimeInterval{Start: at(startH, startM), End: at(endH, endM)}
}

func generate(busy models.BusySet) []models.SlotCandidate {
	return GenerateSlots(day, 9*time.Hour, 17*time.Hour, 20*time.Minute, 30*time.Minute, busy)
}

func TestGenerateSlotsEmptyBusySet(t *testing.T) {
	slots := generate(nil)

	require.Len(t, slots, 16)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(9, 20), slots[0].End)
	assert.Equal(t, at(16, 30), slots[15].Start)
	for i, s := range slots {
		assert.True(t, s.Available, "slot %d should be available", i)
	}
}

func TestGenerateSlotsChronologicalOrder(t *testing.T) {
	slots := generate(nil)
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
		// Step exceeds duration on purpose: a 10 minute buffer between meetings.
		assert.Equal(t, 30*time.Minute, slots[i].Start.Sub(slots[i-1].Start))
	}
}

func TestGenerateSlotsEmptyWorkingWindow(t *testing.T) {
	assert.Empty(t, GenerateSlots(day, 9*time.Hour, 9*time.Hour, 20*time.Minute, 30*time.Minute, nil))
	assert.Empty(t, GenerateSlots(day, 17*time.Hour, 9*time.Hour, 20*time.Minute, 30*time.Minute, nil))
}

func TestGenerateSlotsLastSlotMayPassClosingTime(t *testing.T) {
	// 9:00-10:00 window with 45 minute slots: the 9:30 candidate runs to
	// 10:15, past closing, but its start is before the window end so it is
	// still emitted.
	slots := GenerateSlots(day, 9*time.Hour, 10*time.Hour, 45*time.Minute, 30*time.Minute, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 30), slots[1].Start)
	assert.Equal(t, at(10, 15), slots[1].End)
}

func TestGenerateSlotsOverlapBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		busy      models.BusySet
		slotStart time.Time
		available bool
	}{
		{
			name:      "candidate ends exactly at busy start",
			busy:      models.BusySet{interval(9, 50, 10, 30)},
			slotStart: at(9, 30), // [9:30, 9:50)
			available: true,
		},
		{
			name:      "candidate starts exactly at busy end",
			busy:      models.BusySet{interval(9, 40, 10, 0)},
			slotStart: at(10, 0), // [10:00, 10:20)
			available: true,
		},
		{
			name:      "one minute overlap at candidate end",
			busy:      models.BusySet{interval(10, 19, 10, 40)},
			slotStart: at(10, 0),
			available: false,
		},
		{
			name:      "one minute overlap at candidate start",
			busy:      models.BusySet{interval(9, 40, 10, 1)},
			slotStart: at(10, 0),
			available: false,
		},
		{
			name:      "busy fully inside candidate",
			busy:      models.BusySet{interval(10, 5, 10, 10)},
			slotStart: at(10, 0),
			available: false,
		},
		{
			name:      "candidate fully inside busy",
			busy:      models.BusySet{interval(9, 0, 12, 0)},
			slotStart: at(10, 0),
			available: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := generate(tt.busy)
			for _, s := range slots {
				if s.Start.Equal(tt.slotStart) {
					assert.Equal(t, tt.available, s.Available)
					return
				}
			}
			t.Fatalf("no candidate starting at %v", tt.slotStart)
		})
	}
}

func TestGenerateSlotsBusyEqualToOneCandidate(t *testing.T) {
	slots := generate(models.BusySet{interval(10, 0, 10, 20)})

	require.Len(t, slots, 16)
	for _, s := range slots {
		if s.Start.Equal(at(10, 0)) {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, "slot at %v should be unaffected", s.Start)
		}
	}
}

func TestGenerateSlotsUnorderedOverlappingBusySet(t *testing.T) {
	// The busy set is neither sorted nor merged; each entry is checked on
	// its own.
	busy := models.BusySet{
		interval(14, 0, 15, 0),
		interval(9, 0, 9, 45),
		interval(14, 30, 14, 45), // inside the first entry
		interval(9, 30, 10, 10),  // overlaps the second entry
	}
	slots := generate(busy)

	unavailable := map[string]bool{}
	for _, s := range slots {
		if !s.Available {
			unavailable[s.Start.Format("15:04")] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"09:00": true, "09:30": true, "10:00": true,
		"14:00": true, "14:30": true,
	}, unavailable)
}

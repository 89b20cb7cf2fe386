package panchang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGauriTuesdayFirstDaySlot(t *testing.T) {
	slots := GauriSlots(time.Tuesday, false)
	require.Len(t, slots, 8)

	first := slots[0]
	assert.Equal(t, "06:00", first.Start)
	assert.Equal(t, "07:30", first.End)
	assert.Equal(t, "రోగం", first.Label)
	assert.False(t, first.Meta.AllowsNewVentures)
	assert.Equal(t, "bad", first.Meta.Level)
}

func TestGauriWeekShape(t *testing.T) {
	week := GauriWeek()
	require.Len(t, week, 7)
	for day, slots := range week {
		require.Len(t, slots, 16, day)
		for i, slot := range slots {
			assert.Equal(t, i, slot.Index)
			assert.NotEmpty(t, slot.Label)
		}
	}
}

func TestGauriEighthSlotRepeatsFirst(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := GauriSlots(wd, false)
		assert.Equal(t, day[0].Label, day[7].Label, "%v day", wd)
		night := GauriSlots(wd, true)
		assert.Equal(t, night[0].Label, night[7].Label, "%v night", wd)
	}
}

func TestGauriCurrentStatus(t *testing.T) {
	// Tuesday 06:45 -> first day slot, active.
	at := time.Date(2026, 9, 1, 6, 45, 0, 0, testLoc)
	require.Equal(t, time.Tuesday, at.Weekday())

	status := GauriCurrentStatus(at, testLoc)
	assert.False(t, status.IsNight)
	assert.Equal(t, 0, status.Slot.Index)
	assert.Equal(t, "రోగం", status.Slot.Label)
	assert.True(t, status.IsActiveNow)
}

func TestGauriMidnightSentinelSlot(t *testing.T) {
	// 23:10 falls in the 22:30 slot whose table end marker reads "00:00";
	// it stays active until the next slot's start.
	at := time.Date(2026, 9, 1, 23, 10, 0, 0, testLoc)
	status := GauriCurrentStatus(at, testLoc)

	assert.True(t, status.IsNight)
	assert.Equal(t, 3, status.Slot.Index)
	assert.Equal(t, "00:00", status.Slot.End)
	assert.True(t, status.IsActiveNow)
}

func TestGauriPastMidnightAttribution(t *testing.T) {
	// Wednesday 00:30 is still Tuesday's night phase: slot 4, which starts
	// at the "00:00" marker.
	at := time.Date(2026, 9, 2, 0, 30, 0, 0, testLoc)
	require.Equal(t, time.Wednesday, at.Weekday())

	status := GauriCurrentStatus(at, testLoc)
	assert.True(t, status.IsNight)
	assert.Equal(t, 4, status.Slot.Index)
	assert.Equal(t, "00:00", status.Slot.Start)
	assert.True(t, status.IsActiveNow)
	assert.Equal(t, gauriNightTable[int(time.Tuesday)][4], status.Slot.Label)
}

func TestGauriMetaFallback(t *testing.T) {
	meta := GauriMetaFor("unknown")
	assert.Equal(t, "neutral", meta.Level)
	assert.False(t, meta.AllowsNewVentures)
}

package panchang

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("IST", 5*3600+30*60)

func TestAshtaSlotsCoverPhaseExactly(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		for _, isNight := range []bool{false, true} {
			slots := AshtaSlots(wd, isNight)
			require.Len(t, slots, 30)

			total := 0
			for i, slot := range slots {
				assert.Equal(t, i, slot.Index)
				start := clockStringMinutes(slot.Start)
				end := clockStringMinutes(slot.End)
				dur := end - start
				if dur < 0 {
					dur += 1440
				}
				assert.Equal(t, 24, dur, "slot %d of %v night=%v", i, wd, isNight)
				total += dur

				if i > 0 {
					assert.Equal(t, slots[i-1].End, slot.Start, "slots must be contiguous")
				}
				assert.NotEmpty(t, slot.Label, "gap cells must surface the unavailable label, not disappear")
			}
			assert.Equal(t, 720, total)
		}
	}
}

func TestAshtaCurrentStatusFormula(t *testing.T) {
	// Wednesday 08:15 -> day phase, relative minutes 135, slot 5, 62.5%.
	at := time.Date(2026, 9, 2, 8, 15, 0, 0, testLoc)
	require.Equal(t, time.Wednesday, at.Weekday())

	status := AshtaCurrentStatus(at, testLoc)
	assert.False(t, status.IsNight)
	assert.Equal(t, 5, status.SlotIndex)
	assert.InDelta(t, 62.5, status.ProgressPercent, 1e-9)
	assert.Equal(t, "08:00", status.SlotStart)
	assert.Equal(t, "08:24", status.SlotEnd)
}

func TestAshtaSlotIndexConsistency(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, testLoc)
	for min := 0; min < 1440; min += 7 {
		at := day.Add(time.Duration(min) * time.Minute)
		status := AshtaCurrentStatus(at, testLoc)

		rel, _ := phaseRelativeMinutes(min)
		assert.Equal(t, rel/24, status.SlotIndex, "minute %d", min)
		assert.GreaterOrEqual(t, status.ProgressPercent, 0.0)
		assert.Less(t, status.ProgressPercent, 100.0)
	}
}

func TestAshtaNightWrapsPastMidnight(t *testing.T) {
	// 02:00 belongs to the night phase that began at 18:00 the previous day.
	at := time.Date(2026, 9, 3, 2, 0, 0, 0, testLoc) // Thursday early morning
	status := AshtaCurrentStatus(at, testLoc)

	assert.True(t, status.IsNight)
	// 02:00 -> rel = 120 + 360 = 480 -> slot 20.
	assert.Equal(t, 20, status.SlotIndex)
	// Label must come from Wednesday's night row.
	assert.Equal(t, ashtaNightTable[20][int(time.Wednesday)], status.Label)
}

func TestAshtaGapCellSurfacesUnavailable(t *testing.T) {
	// Day table has a recorded gap at slot 4 for Tuesday.
	require.Empty(t, ashtaDayTable[4][int(time.Tuesday)])

	slots := AshtaSlots(time.Tuesday, false)
	assert.Equal(t, UnavailableLabel, slots[4].Label)
	assert.Equal(t, "neutral", AshtaMetaFor(slots[4].Label).Category)
}

func TestAshtaBands(t *testing.T) {
	cases := []struct {
		clock string
		band  string
	}{
		{"06:30", "forenoon"},
		{"11:59", "forenoon"},
		{"12:00", "afternoon"},
		{"15:59", "afternoon"},
		{"16:00", "late_afternoon"},
		{"17:59", "late_afternoon"},
		{"18:00", "night"},
		{"03:00", "night"},
	}
	for _, tc := range cases {
		t.Run(tc.clock, func(t *testing.T) {
			assert.Equal(t, tc.band, string(bandFor(clockStringMinutes(tc.clock))))
		})
	}
}

func TestAshtaMetaFallback(t *testing.T) {
	meta := AshtaMetaFor("no such label")
	assert.Equal(t, "neutral", meta.Category)
}

func TestAshtaPhaseBoundaries(t *testing.T) {
	day := time.Date(2026, 9, 2, 0, 0, 0, 0, testLoc)
	for _, tc := range []struct {
		clock   string
		isNight bool
		slot    int
	}{
		{"06:00", false, 0},
		{"17:59", false, 29},
		{"18:00", true, 0},
		{"05:59", true, 29},
	} {
		t.Run(tc.clock, func(t *testing.T) {
			at := day.Add(time.Duration(clockStringMinutes(tc.clock)) * time.Minute)
			status := AshtaCurrentStatus(at, testLoc)
			assert.Equal(t, tc.isNight, status.IsNight)
			assert.Equal(t, tc.slot, status.SlotIndex)
		})
	}
}

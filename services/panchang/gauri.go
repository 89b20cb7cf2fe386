// services/panchang/gauri.go
package panchang

import (
	"time"

	"panchang/models"
)

const gauriSlotMinutes = 90

// GauriMetaFor returns the metadata for a Gauri status label, falling back
// to a neutral default for unknown labels.
func GauriMetaFor(label string) models.GauriMeta {
	if meta, ok := gauriMeta[label]; ok {
		return meta
	}
	return gauriNeutralMeta
}

// GauriSlots returns the 8-slot table for one phase of a weekday, built from
// the literal boundary markers.
func GauriSlots(weekday time.Weekday, isNight bool) []models.GauriSlot {
	labels := gauriDayTable[int(weekday)]
	starts, ends := gauriDayStarts, gauriDayEnds
	if isNight {
		labels = gauriNightTable[int(weekday)]
		starts, ends = gauriNightStarts, gauriNightEnds
	}

	slots := make([]models.GauriSlot, 0, 8)
	for i := 0; i < 8; i++ {
		slots = append(slots, models.GauriSlot{
			Index: i,
			Start: starts[i],
			End:   ends[i],
			Label: labels[i],
			Meta:  GauriMetaFor(labels[i]),
		})
	}
	return slots
}

// gauriSlotActive reports whether a slot is active at the given wall-clock
// minute. A slot whose end marker is "00:00" stays active from its start
// until the next slot's start is reached, however far past midnight that
// is; a slot starting at "00:00" is active for start <= now < end as usual.
func gauriSlotActive(slot models.GauriSlot, nextStart string, clockMin int) bool {
	start := clockStringMinutes(slot.Start)
	next := clockStringMinutes(nextStart)

	if slot.End == "00:00" {
		// Continues across midnight until the following slot begins.
		if next <= start {
			return clockMin >= start || clockMin < next
		}
		return clockMin >= start && clockMin < next
	}

	end := clockStringMinutes(slot.End)
	if end <= start {
		return clockMin >= start || clockMin < end
	}
	return clockMin >= start && clockMin < end
}

func clockStringMinutes(s string) int {
	if len(s) != 5 || s[2] != ':' {
		return 0
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m
}

// GauriCurrentStatus maps an instant to its Gauri Panchangam slot. Weekday
// attribution follows the phase: a night slot past midnight belongs to the
// weekday the night started on.
func GauriCurrentStatus(t time.Time, loc *time.Location) models.GauriStatus {
	civil := t.In(loc)
	clockMin := minutesSinceMidnight(civil)
	rel, isNight := phaseRelativeMinutes(clockMin)

	idx := rel / gauriSlotMinutes
	if idx < 0 {
		idx = 0
	}
	if idx > 7 {
		idx = 7
	}

	weekday := civil.Weekday()
	if isNight && clockMin < dayPhaseStartMin {
		weekday = civil.AddDate(0, 0, -1).Weekday()
	}

	slots := GauriSlots(weekday, isNight)
	slot := slots[idx]
	nextStart := slots[(idx+1)%8].Start
	if idx == 7 {
		// Last slot of the phase ends where the opposite phase begins.
		nextStart = slot.End
	}

	return models.GauriStatus{
		Slot:        slot,
		IsNight:     isNight,
		IsActiveNow: gauriSlotActive(slot, nextStart, clockMin),
	}
}

// GauriWeek returns the full 7-day x 16-slot table (day followed by night
// per weekday) used by the weekly timeline view.
func GauriWeek() map[string][]models.GauriSlot {
	week := make(map[string][]models.GauriSlot, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		slots := GauriSlots(wd, false)
		slots = append(slots, GauriSlots(wd, true)...)
		// Re-number across the whole day so indexes run 0..15.
		for i := range slots {
			slots[i].Index = i
		}
		week[wd.String()] = slots
	}
	return week
}

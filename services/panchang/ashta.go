// services/panchang/ashta.go
package panchang

import (
	"fmt"
	"time"

	"panchang/models"
)

// Ashta Siddhanta divides the fixed civil day phase (06:00–18:00) and night
// phase (18:00–06:00) into 30 equal slots of 24 minutes each. The phase
// boundaries are civil-clock-fixed approximations of sunrise/sunset; they
// are never recomputed astronomically.
const (
	ashtaSlotMinutes = 24
	phaseMinutes     = 720 // 12 hours per phase
	dayPhaseStartMin = 360 // 06:00
	dayPhaseEndMin   = 1080
)

func minutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// phaseRelativeMinutes folds wall-clock minutes into minutes since the start
// of the current phase. Night wraps past midnight: 18:00 maps to 0 and
// 05:59 maps to 719.
func phaseRelativeMinutes(clockMin int) (rel int, isNight bool) {
	switch {
	case clockMin >= dayPhaseStartMin && clockMin < dayPhaseEndMin:
		return clockMin - dayPhaseStartMin, false
	case clockMin >= dayPhaseEndMin:
		return clockMin - dayPhaseEndMin, true
	default:
		return clockMin + (1440 - dayPhaseEndMin), true
	}
}

func clockLabel(clockMin int) string {
	clockMin %= 1440
	return fmt.Sprintf("%02d:%02d", clockMin/60, clockMin%60)
}

// bandFor attaches the coarse display grouping for a wall-clock minute. It
// has no effect on slot computation.
func bandFor(clockMin int) models.PeriodBand {
	switch {
	case clockMin >= 360 && clockMin < 720:
		return models.BandForenoon
	case clockMin >= 720 && clockMin < 960:
		return models.BandAfternoon
	case clockMin >= 960 && clockMin < 1080:
		return models.BandLateAfternoon
	default:
		return models.BandNight
	}
}

// ashtaLabel resolves a table cell, substituting the explicit unavailable
// label for gaps in the source table.
func ashtaLabel(slot int, weekday time.Weekday, isNight bool) string {
	var cell string
	if isNight {
		cell = ashtaNightTable[slot][int(weekday)]
	} else {
		cell = ashtaDayTable[slot][int(weekday)]
	}
	if cell == "" {
		return UnavailableLabel
	}
	return cell
}

// AshtaMetaFor returns the metadata for a label, falling back to a neutral
// default for unknown labels.
func AshtaMetaFor(label string) models.AshtaMeta {
	if meta, ok := ashtaMeta[label]; ok {
		return meta
	}
	return ashtaNeutralMeta
}

// AshtaCurrentStatus maps an instant to its Ashta Siddhanta slot. The
// instant is normalized into the supplied civil timezone first; the weekday
// is taken from the civil date of the phase. A night slot past midnight
// belongs to the weekday the night started on.
func AshtaCurrentStatus(t time.Time, loc *time.Location) models.AshtaStatus {
	civil := t.In(loc)
	clockMin := minutesSinceMidnight(civil)
	rel, isNight := phaseRelativeMinutes(clockMin)

	slot := rel / ashtaSlotMinutes
	if slot < 0 {
		slot = 0
	}
	if slot > 29 {
		slot = 29
	}

	weekday := civil.Weekday()
	if isNight && clockMin < dayPhaseStartMin {
		// Past midnight: still the previous civil day's night phase.
		weekday = civil.AddDate(0, 0, -1).Weekday()
	}

	startMin := phaseStartMin(isNight) + slot*ashtaSlotMinutes
	label := ashtaLabel(slot, weekday, isNight)

	return models.AshtaStatus{
		Label:           label,
		Meta:            AshtaMetaFor(label),
		IsNight:         isNight,
		SlotIndex:       slot,
		ProgressPercent: float64(rel%ashtaSlotMinutes) / ashtaSlotMinutes * 100,
		SlotStart:       clockLabel(startMin),
		SlotEnd:         clockLabel(startMin + ashtaSlotMinutes),
		Band:            bandFor(startMin % 1440),
	}
}

func phaseStartMin(isNight bool) int {
	if isNight {
		return dayPhaseEndMin
	}
	return dayPhaseStartMin
}

// AshtaSlots returns the full ordered timeline of one phase for a weekday:
// exactly 30 contiguous, non-overlapping slots covering 720 minutes. Slots
// with no table value are included with the unavailable label so the
// timeline never has holes.
func AshtaSlots(weekday time.Weekday, isNight bool) []models.AshtaSlot {
	slots := make([]models.AshtaSlot, 0, 30)
	base := phaseStartMin(isNight)
	for i := 0; i < 30; i++ {
		startMin := base + i*ashtaSlotMinutes
		slots = append(slots, models.AshtaSlot{
			Index: i,
			Start: clockLabel(startMin),
			End:   clockLabel(startMin + ashtaSlotMinutes),
			Label: ashtaLabel(i, weekday, isNight),
			Band:  bandFor(startMin % 1440),
		})
	}
	return slots
}

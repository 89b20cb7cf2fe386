// services/panchang/interval.go
package panchang

import (
	"fmt"
	"time"

	"panchang/models"
)

// UpcomingHorizon bounds how far ahead a window may start and still be
// surfaced as "upcoming"; anything further out is not yet relevant.
const UpcomingHorizon = 2 * time.Hour

// IntervalState classifies a window against "now". Pure; repeated calls
// with non-decreasing now never regress the phase.
func IntervalState(w models.TimeWindow, now time.Time) models.IntervalState {
	switch {
	case now.After(w.End):
		return models.IntervalState{
			Phase:           models.PhasePast,
			ProgressPercent: 100,
			Remaining:       formatRemaining(0),
		}
	case now.Before(w.Start):
		return models.IntervalState{
			Phase:            models.PhaseUpcoming,
			ProgressPercent:  0,
			Remaining:        formatRemaining(w.End.Sub(now)),
			RemainingSeconds: int64(w.End.Sub(now) / time.Second),
		}
	}

	total := w.End.Sub(w.Start)
	progress := 0.0
	if total > 0 {
		progress = float64(now.Sub(w.Start)) / float64(total) * 100
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	remaining := w.End.Sub(now)
	return models.IntervalState{
		Phase:            models.PhaseActive,
		ProgressPercent:  progress,
		Remaining:        formatRemaining(remaining),
		RemainingSeconds: int64(remaining / time.Second),
	}
}

// formatRemaining renders a duration for countdown display: "{h}h {m}m"
// when at least an hour remains, "{m}m {s}s" when at least a minute, else
// "{s}s".
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60

	switch {
	case h >= 1:
		return fmt.Sprintf("%dh %dm", h, m)
	case m >= 1:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// SelectWindows reduces a day's windows to the single active one plus the
// upcoming ones inside the horizon. When upstream inconsistency makes more
// than one window active at once, the first in category priority order wins;
// that is a documented tie-break, not an error.
func SelectWindows(windows []models.TimeWindow, now time.Time) (*models.WindowState, []models.WindowState) {
	var active *models.WindowState
	var upcoming []models.WindowState

	for _, cat := range models.CategoryPriority {
		for _, w := range windows {
			if w.Category != cat {
				continue
			}
			state := IntervalState(w, now)
			switch state.Phase {
			case models.PhaseActive:
				if active == nil {
					active = &models.WindowState{Window: w, State: state}
				}
			case models.PhaseUpcoming:
				if w.Start.Sub(now) <= UpcomingHorizon {
					upcoming = append(upcoming, models.WindowState{Window: w, State: state})
				}
			}
		}
	}
	return active, upcoming
}

// DayProgress is how far the civil day containing now has advanced, 0..100.
func DayProgress(now time.Time, loc *time.Location) float64 {
	civil := now.In(loc)
	elapsed := float64(minutesSinceMidnight(civil)*60 + civil.Second())
	return elapsed / (24 * 3600) * 100
}

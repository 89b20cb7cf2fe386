package models

import "time"

// WindowPhase classifies a window relative to "now".
type WindowPhase string

const (
	PhasePast     WindowPhase = "past"
	PhaseActive   WindowPhase = "active"
	PhaseUpcoming WindowPhase = "upcoming"
)

// TimeWindow is a named window anchored to a specific calendar date in the
// civil timezone. Start is always strictly before End; an end that reads
// earlier than its start in the source string has already been rolled over
// to the next day.
type TimeWindow struct {
	Category Category  `json:"category"`
	Label    string    `json:"label"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// IntervalState is the derived live state of a window. It has no lifecycle
// of its own: it is recomputed from (window, now) on every tick and
// discarded.
type IntervalState struct {
	Phase            WindowPhase `json:"phase"`
	ProgressPercent  float64     `json:"progressPercent"` // 0..100, clamped
	Remaining        string      `json:"remaining"`       // "1h 5m", "12m 30s", "45s"
	RemainingSeconds int64       `json:"remainingSeconds"`
}

// WindowState pairs a window with its computed state for API responses.
type WindowState struct {
	Window TimeWindow    `json:"window"`
	State  IntervalState `json:"state"`
}

// Snapshot is the tracker's latest view of the day: at most one active
// window, plus windows starting within the surfacing horizon.
type Snapshot struct {
	ComputedAt time.Time     `json:"computedAt"`
	Active     *WindowState  `json:"active,omitempty"`
	Upcoming   []WindowState `json:"upcoming,omitempty"`
	// DayProgressPercent is how far the civil day has advanced, for the
	// day-progress ring.
	DayProgressPercent float64 `json:"dayProgressPercent"`
}

package models

// PeriodBand is the coarse display grouping attached to Ashta Siddhanta
// slots. It has no effect on slot computation.
type PeriodBand string

const (
	BandForenoon      PeriodBand = "forenoon"       // 06:00–12:00
	BandAfternoon     PeriodBand = "afternoon"      // 12:00–16:00
	BandLateAfternoon PeriodBand = "late_afternoon" // 16:00–18:00
	BandNight         PeriodBand = "night"          // 18:00–06:00
)

// AshtaMeta describes an Ashta Siddhanta label.
type AshtaMeta struct {
	Category    string `json:"category"` // "good", "bad" or "neutral"
	Description string `json:"description"`
	Advice      string `json:"advice"`
}

// AshtaStatus is the partitioner's answer for a single instant.
type AshtaStatus struct {
	Label           string     `json:"label"`
	Meta            AshtaMeta  `json:"meta"`
	IsNight         bool       `json:"isNight"`
	SlotIndex       int        `json:"slotIndex"` // 0..29 within the phase
	ProgressPercent float64    `json:"progressPercent"`
	SlotStart       string     `json:"slotStart"` // "HH:MM" civil clock
	SlotEnd         string     `json:"slotEnd"`
	Band            PeriodBand `json:"band"`
}

// AshtaSlot is one entry of the full 30-slot phase timeline.
type AshtaSlot struct {
	Index int        `json:"index"`
	Start string     `json:"start"`
	End   string     `json:"end"`
	Label string     `json:"label"`
	Band  PeriodBand `json:"band"`
}

// GauriMeta describes a Gauri Panchangam label.
type GauriMeta struct {
	Level             string `json:"level"` // "excellent", "good", "neutral", "bad"
	AllowsNewVentures bool   `json:"allowsNewVentures"`
	Color             string `json:"color"`
	Description       string `json:"description"`
}

// GauriSlot is one 90-minute entry of a weekday's table. Start/End are
// literal civil clock markers; an End of "00:00" means the slot runs until
// the next slot's start rather than ending at literal midnight.
type GauriSlot struct {
	Index int       `json:"index"`
	Start string    `json:"start"`
	End   string    `json:"end"`
	Label string    `json:"label"`
	Meta  GauriMeta `json:"meta"`
}

// GauriStatus is the Gauri partitioner's answer for a single instant.
type GauriStatus struct {
	Slot        GauriSlot `json:"slot"`
	IsNight     bool      `json:"isNight"`
	IsActiveNow bool      `json:"isActiveNow"`
}

// FixedWindows are the three weekday-determined inauspicious windows, each a
// literal range string from the static table.
type FixedWindows struct {
	Rahu   string `json:"rahu"`
	Yama   string `json:"yama"`
	Gulika string `json:"gulika"`
}

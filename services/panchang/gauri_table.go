// services/panchang/gauri_table.go
package panchang

import "panchang/models"

// gauriDayTable and gauriNightTable hold the Gauri Panchangam status labels,
// indexed [weekday][slot] with weekday 0 = Sunday. Each phase has 8 slots of
// 90 minutes; the eighth slot always repeats the weekday's first label.
var gauriDayTable = [7][8]string{
	{"ఉద్వేగం", "చరం", "లాభం", "అమృతం", "కాలం", "శుభం", "రోగం", "ఉద్వేగం"}, // Sunday
	{"అమృతం", "కాలం", "శుభం", "రోగం", "ఉద్వేగం", "చరం", "లాభం", "అమృతం"}, // Monday
	{"రోగం", "ఉద్వేగం", "చరం", "లాభం", "అమృతం", "కాలం", "శుభం", "రోగం"}, // Tuesday
	{"లాభం", "అమృతం", "కాలం", "శుభం", "రోగం", "ఉద్వేగం", "చరం", "లాభం"}, // Wednesday
	{"శుభం", "రోగం", "ఉద్వేగం", "చరం", "లాభం", "అమృతం", "కాలం", "శుభం"}, // Thursday
	{"చరం", "లాభం", "అమృతం", "కాలం", "శుభం", "రోగం", "ఉద్వేగం", "చరం"}, // Friday
	{"కాలం", "శుభం", "రోగం", "ఉద్వేగం", "చరం", "లాభం", "అమృతం", "కాలం"}, // Saturday
}

var gauriNightTable = [7][8]string{
	{"శుభం", "రోగం", "ఉద్వేగం", "చరం", "లాభం", "అమృతం", "కాలం", "శుభం"}, // Sunday
	{"చరం", "లాభం", "అమృతం", "కాలం", "శుభం", "రోగం", "ఉద్వేగం", "చరం"}, // Monday
	{"కాలం", "శుభం", "రోగం", "ఉద్వేగం", "చరం", "లాభం", "అమృతం", "కాలం"}, // Tuesday
	{"ఉద్వేగం", "చరం", "లాభం", "అమృతం", "కాలం", "శుభం", "రోగం", "ఉద్వేగం"}, // Wednesday
	{"అమృతం", "కాలం", "శుభం", "రోగం", "ఉద్వేగం", "చరం", "లాభం", "అమృతం"}, // Thursday
	{"రోగం", "ఉద్వేగం", "చరం", "లాభం", "అమృతం", "కాలం", "శుభం", "రోగం"}, // Friday
	{"లాభం", "అమృతం", "కాలం", "శుభం", "రోగం", "ఉద్వేగం", "చరం", "లాభం"}, // Saturday
}

// gauriDayStarts / gauriNightStarts are the literal civil-clock slot
// boundary markers. In the night table "00:00" appears both as the end of
// the 22:30 slot and the start of the following one; an end of "00:00"
// means "runs until the next slot begins", not literal midnight-only.
var (
	gauriDayStarts   = [8]string{"06:00", "07:30", "09:00", "10:30", "12:00", "13:30", "15:00", "16:30"}
	gauriDayEnds     = [8]string{"07:30", "09:00", "10:30", "12:00", "13:30", "15:00", "16:30", "18:00"}
	gauriNightStarts = [8]string{"18:00", "19:30", "21:00", "22:30", "00:00", "01:30", "03:00", "04:30"}
	gauriNightEnds   = [8]string{"19:30", "21:00", "22:30", "00:00", "01:30", "03:00", "04:30", "06:00"}
)

// gauriMeta describes every Gauri status label. Lookup misses fall back to
// gauriNeutralMeta.
var gauriMeta = map[string]models.GauriMeta{
	"అమృతం":   {Level: "excellent", AllowsNewVentures: true, Color: "#2e7d32", Description: "అమృత వేళ, అన్ని కార్యాలకు శ్రేష్ఠం"},
	"శుభం":    {Level: "good", AllowsNewVentures: true, Color: "#43a047", Description: "శుభ వేళ, శుభకార్యాలకు అనుకూలం"},
	"లాభం":    {Level: "good", AllowsNewVentures: true, Color: "#7cb342", Description: "లాభ వేళ, కొత్త పనులు ఫలిస్తాయి"},
	"చరం":     {Level: "neutral", AllowsNewVentures: true, Color: "#fdd835", Description: "చర వేళ, ప్రయాణాలకు అనుకూలం"},
	"ఉద్వేగం": {Level: "bad", AllowsNewVentures: false, Color: "#fb8c00", Description: "ఉద్వేగ వేళ, కొత్త పనులు వద్దు"},
	"కాలం":    {Level: "bad", AllowsNewVentures: false, Color: "#e53935", Description: "కాల వేళ, శుభకార్యాలు నిషిద్ధం"},
	"రోగం":    {Level: "bad", AllowsNewVentures: false, Color: "#b71c1c", Description: "రోగ వేళ, కొత్త పనులు ప్రారంభించవద్దు"},
}

var gauriNeutralMeta = models.GauriMeta{
	Level:             "neutral",
	AllowsNewVentures: false,
	Color:             "#9e9e9e",
	Description:       UnavailableLabel,
}

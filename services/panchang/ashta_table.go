// services/panchang/ashta_table.go
package panchang

import "panchang/models"

// UnavailableLabel is surfaced for table cells with no recorded value. The
// source tables have known gaps; they are shown as-is rather than guessed
// from neighbouring slots.
const UnavailableLabel = "వివరాలు అందుబాటులో లేవు"

// ashtaDayTable and ashtaNightTable are the Ashta Siddhanta label matrices,
// indexed [slot][weekday] with weekday 0 = Sunday. Each phase has exactly 30
// rows of 24 minutes. An empty cell means the source table carries no value
// for that slot.
var ashtaDayTable = [30][7]string{
	{"అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం"}, // slot 0
	{"శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం"}, // slot 1
	{"లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం"}, // slot 2
	{"ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం"}, // slot 3
	{"సుఖం", "రోగం", "", "ధనం", "చోరం", "కాలం", "లాభం"}, // slot 4
	{"ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం"}, // slot 5
	{"చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం"}, // slot 6
	{"రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం"}, // slot 7
	{"విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం"}, // slot 8
	{"కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం"}, // slot 9
	{"అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం"}, // slot 10
	{"శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం"}, // slot 11
	{"లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం"}, // slot 12
	{"ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం"}, // slot 13
	{"సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం"}, // slot 14
	{"ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం"}, // slot 15
	{"చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం"}, // slot 16
	{"రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", ""}, // slot 17
	{"విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం"}, // slot 18
	{"కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం"}, // slot 19
	{"అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం"}, // slot 20
	{"శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం"}, // slot 21
	{"లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం"}, // slot 22
	{"", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం"}, // slot 23
	{"సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం"}, // slot 24
	{"ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం"}, // slot 25
	{"చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం"}, // slot 26
	{"రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం"}, // slot 27
	{"విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం"}, // slot 28
	{"కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం"}, // slot 29
}

var ashtaNightTable = [30][7]string{
	{"ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం"}, // slot 0
	{"చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం"}, // slot 1
	{"రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం"}, // slot 2
	{"విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం"}, // slot 3
	{"కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం"}, // slot 4
	{"అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం"}, // slot 5
	{"శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం"}, // slot 6
	{"లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం"}, // slot 7
	{"ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం"}, // slot 8
	{"సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం"}, // slot 9
	{"ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం"}, // slot 10
	{"చోరం", "కాలం", "లాభం", "", "విషం", "శుభం", "సుఖం"}, // slot 11
	{"రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం"}, // slot 12
	{"విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం"}, // slot 13
	{"కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం"}, // slot 14
	{"అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం"}, // slot 15
	{"శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం"}, // slot 16
	{"లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం"}, // slot 17
	{"ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం"}, // slot 18
	{"సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం"}, // slot 19
	{"ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం"}, // slot 20
	{"చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం"}, // slot 21
	{"రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం"}, // slot 22
	{"విషం", "శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం"}, // slot 23
	{"కాలం", "లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం"}, // slot 24
	{"అమృతం", "ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "విషం"}, // slot 25
	{"శుభం", "సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం"}, // slot 26
	{"లాభం", "ఉద్యోగం", "విషం", "శుభం", "సుఖం", "రోగం", "అమృతం"}, // slot 27
	{"ధనం", "చోరం", "కాలం", "లాభం", "ఉద్యోగం", "", "శుభం"}, // slot 28
	{"సుఖం", "రోగం", "అమృతం", "ధనం", "చోరం", "కాలం", "లాభం"}, // slot 29
}

// ashtaMeta describes every label appearing in the matrices. Lookups for
// unknown labels fall back to a neutral default.
var ashtaMeta = map[string]models.AshtaMeta{
	"అమృతం":   {Category: "good", Description: "అమృత ఘడియలు", Advice: "అన్ని శుభకార్యాలకు అనుకూలం"},
	"శుభం":    {Category: "good", Description: "శుభ ఘడియలు", Advice: "కొత్త పనులు ప్రారంభించవచ్చు"},
	"లాభం":    {Category: "good", Description: "లాభ ఘడియలు", Advice: "వ్యాపార లావాదేవీలకు మంచి సమయం"},
	"ధనం":     {Category: "good", Description: "ధన ఘడియలు", Advice: "ఆర్థిక వ్యవహారాలకు అనుకూలం"},
	"సుఖం":    {Category: "good", Description: "సుఖ ఘడియలు", Advice: "గృహ కార్యాలకు అనుకూలం"},
	"ఉద్యోగం": {Category: "neutral", Description: "ఉద్యోగ ఘడియలు", Advice: "నిత్య కార్యాలు కొనసాగించవచ్చు"},
	"చోరం":    {Category: "bad", Description: "చోర ఘడియలు", Advice: "విలువైన వస్తువుల లావాదేవీలు వద్దు"},
	"రోగం":    {Category: "bad", Description: "రోగ ఘడియలు", Advice: "కొత్త పనులు వాయిదా వేయడం మంచిది"},
	"విషం":    {Category: "bad", Description: "విష ఘడియలు", Advice: "శుభకార్యాలు నిషిద్ధం"},
	"కాలం":    {Category: "bad", Description: "కాల ఘడియలు", Advice: "ముఖ్య నిర్ణయాలు వాయిదా వేయండి"},
}

var ashtaNeutralMeta = models.AshtaMeta{
	Category:    "neutral",
	Description: UnavailableLabel,
	Advice:      "",
}

package models

// PayloadItem is a single label/value row inside an upstream section. The
// upstream feed is semi-structured: Type and Events are present only on some
// rows and are passed through untouched.
type PayloadItem struct {
	Label  string   `bson:"label" json:"label"`
	Value  string   `bson:"value" json:"value"`
	Type   string   `bson:"type,omitempty" json:"type,omitempty"`
	Events []string `bson:"events,omitempty" json:"events,omitempty"`
}

// PayloadSection is one titled group of items. Titles vary by language and
// ordering; no particular section is guaranteed to exist.
type PayloadSection struct {
	Title string        `bson:"title" json:"title"`
	Items []PayloadItem `bson:"items" json:"items"`
}

// DailyPanchang is the daily payload supplied by the upstream content API.
type DailyPanchang struct {
	Date      string           `bson:"date" json:"date"` // "2006-01-02"
	Sections  []PayloadSection `bson:"sections" json:"sections"`
	Festivals []string         `bson:"festivals,omitempty" json:"festivals,omitempty"`
}

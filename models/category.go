package models

// Category identifies the semantic kind of a named panchangam time window.
type Category string

const (
	CategoryRahu         Category = "rahu"
	CategoryYama         Category = "yama"
	CategoryGulika       Category = "gulika"
	CategoryDurmuhurtham Category = "durmuhurtham"
	CategoryVargyam      Category = "vargyam"
	CategoryAbhijit      Category = "abhijit"
	CategoryAmrit        Category = "amrit"
	CategoryBrahma       Category = "brahma"
	CategoryVijaya       Category = "vijaya"
	CategoryGodhuli      Category = "godhuli"
	CategorySandhya      Category = "sandhya"
	CategoryNishita      Category = "nishita"
	// CategoryMuhurtham is the default for labels that read like a named
	// auspicious window but match none of the specific categories.
	CategoryMuhurtham Category = "muhurtham"
)

// CategoryPriority is the documented tie-break order: when more than one
// window is simultaneously active, the first category in this list wins.
// It is also the order classification keywords are checked in.
var CategoryPriority = []Category{
	CategoryRahu,
	CategoryYama,
	CategoryGulika,
	CategoryDurmuhurtham,
	CategoryVargyam,
	CategoryAbhijit,
	CategoryAmrit,
	CategoryBrahma,
	CategoryVijaya,
	CategoryGodhuli,
	CategorySandhya,
	CategoryNishita,
	CategoryMuhurtham,
}

// Inauspicious reports whether the category belongs to the inauspicious
// merge set (the "avoid these hours" UI); everything else feeds the
// auspicious set.
func (c Category) Inauspicious() bool {
	switch c {
	case CategoryRahu, CategoryYama, CategoryGulika, CategoryDurmuhurtham, CategoryVargyam:
		return true
	}
	return false
}

// CategorizedItem is an upstream label/value pair after classification and
// merging, ready for time-range parsing.
type CategorizedItem struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	RawValue string   `json:"rawValue"`
}

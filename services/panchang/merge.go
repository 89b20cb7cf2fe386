// services/panchang/merge.go
package panchang

import (
	"strings"

	"panchang/models"
	"panchang/utils"

	"go.uber.org/zap"
)

// categoryKeywords pairs each category with its detection keywords, both
// transliterated Latin and Telugu-script forms. Matching is case-insensitive
// substring, checked in models.CategoryPriority order so the tie-break is
// explicit rather than incidental.
var categoryKeywords = map[models.Category][]string{
	models.CategoryRahu:         {"rahu", "రాహు"},
	models.CategoryYama:         {"yama", "యమగండ", "యమ"},
	models.CategoryGulika:       {"gulika", "kuligai", "గుళిక", "గులిక"},
	models.CategoryDurmuhurtham: {"durmuhurt", "dur muhurt", "దుర్ముహూర్త"},
	models.CategoryVargyam:      {"varjyam", "vargyam", "varjya", "వర్జ్యం", "వర్జ్య"},
	models.CategoryAbhijit:      {"abhijit", "అభిజిత్"},
	models.CategoryAmrit:        {"amrit", "అమృత"},
	models.CategoryBrahma:       {"brahma", "బ్రహ్మ"},
	models.CategoryVijaya:       {"vijaya", "విజయ"},
	models.CategoryGodhuli:      {"godhuli", "గోధూళి"},
	models.CategorySandhya:      {"sandhya", "సంధ్యా", "సంధ్య", "సాయాహ్న"},
	models.CategoryNishita:      {"nishita", "నిశీథ", "నిశిత"},
}

// muhurthamHints mark labels that read like a named auspicious window but
// match none of the specific categories; they default to muhurtham.
var muhurthamHints = []string{"muhurt", "ముహూర్త", "kalam", "కాలం", "kaal", "వేళ"}

// defaultLabels name windows we synthesize locally when the upstream feed
// did not supply them.
var defaultLabels = map[models.Category]string{
	models.CategoryRahu:   "రాహుకాలం",
	models.CategoryYama:   "యమగండం",
	models.CategoryGulika: "గుళిక కాలం",
}

// DetectCategory classifies an upstream item label. The second return is
// false for rows that do not denote a timing window at all (plain
// descriptive rows pass through unclassified).
func DetectCategory(label string) (models.Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return "", false
	}

	for _, cat := range models.CategoryPriority {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(needle, kw) {
				return cat, true
			}
		}
	}

	for _, hint := range muhurthamHints {
		if strings.Contains(needle, hint) {
			return models.CategoryMuhurtham, true
		}
	}
	return "", false
}

// IsPlaceholder reports whether an upstream value means "no data".
func IsPlaceholder(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "" || v == "none" || v == "n/a"
}

// MergeSections flattens an upstream payload into deduplicated categorized
// window items. The payload shape is not trusted: sections may be missing,
// reordered, or carry unknown titles. Duplicate (category, label) items keep
// the first non-placeholder value seen; a later placeholder never overwrites
// a real value. After merging, rahu/yama/gulika still lacking a real value
// are filled from the fixed weekday table (the only error actively repaired
// rather than reported). The result is safe to feed to ParseRange and the
// operation is idempotent.
func MergeSections(payload models.DailyPanchang, dayName string) []models.CategorizedItem {
	logger := utils.GetLogger()

	type key struct {
		cat   models.Category
		label string
	}
	index := make(map[key]int)
	var merged []models.CategorizedItem

	for _, section := range payload.Sections {
		for _, item := range section.Items {
			cat, ok := DetectCategory(item.Label)
			if !ok {
				continue
			}
			k := key{cat, item.Label}
			at, seen := index[k]
			if !seen {
				index[k] = len(merged)
				merged = append(merged, models.CategorizedItem{Category: cat, Label: item.Label, RawValue: item.Value})
				continue
			}

			prev := merged[at]
			switch {
			case IsPlaceholder(prev.RawValue) && !IsPlaceholder(item.Value):
				merged[at].RawValue = item.Value
			case !IsPlaceholder(prev.RawValue) && !IsPlaceholder(item.Value) && prev.RawValue != item.Value:
				// Upstream inconsistency: same window, two real values.
				// First wins; worth a diagnostic.
				logger.Warn("conflicting duplicate window values in upstream payload",
					zap.String("label", item.Label),
					zap.String("kept", prev.RawValue),
					zap.String("dropped", item.Value),
				)
			}
		}
	}

	merged = applyFixedOverrides(merged, dayName)
	return merged
}

// applyFixedOverrides substitutes the fixed weekday table entry for
// rahu/yama/gulika categories that carry no real value after the merge.
// Durmuhurtham/vargyam have no fixed-table fallback and stay absent when
// unsupplied.
func applyFixedOverrides(merged []models.CategorizedItem, dayName string) []models.CategorizedItem {
	fixed := LookupFixedWindows(dayName)
	fixedValues := map[models.Category]string{
		models.CategoryRahu:   fixed.Rahu,
		models.CategoryYama:   fixed.Yama,
		models.CategoryGulika: fixed.Gulika,
	}

	supplied := make(map[models.Category]bool)
	for i, item := range merged {
		value, fixable := fixedValues[item.Category]
		if !fixable {
			continue
		}
		if IsPlaceholder(item.RawValue) {
			merged[i].RawValue = value
		}
		supplied[item.Category] = true
	}

	for _, cat := range []models.Category{models.CategoryRahu, models.CategoryYama, models.CategoryGulika} {
		if !supplied[cat] {
			merged = append(merged, models.CategorizedItem{
				Category: cat,
				Label:    defaultLabels[cat],
				RawValue: fixedValues[cat],
			})
		}
	}
	return merged
}

package panchang

import (
	"testing"

	"panchang/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCategory(items []models.CategorizedItem, cat models.Category) *models.CategorizedItem {
	for i := range items {
		if items[i].Category == cat {
			return &items[i]
		}
	}
	return nil
}

func TestDetectCategoryBothScripts(t *testing.T) {
	cases := []struct {
		label string
		want  models.Category
	}{
		{"Rahu Kalam", models.CategoryRahu},
		{"రాహుకాలం", models.CategoryRahu},
		{"Yamagandam", models.CategoryYama},
		{"యమగండం", models.CategoryYama},
		{"Gulika Kalam", models.CategoryGulika},
		{"గుళిక కాలం", models.CategoryGulika},
		{"Durmuhurtham", models.CategoryDurmuhurtham},
		{"దుర్ముహూర్తం", models.CategoryDurmuhurtham},
		{"Varjyam", models.CategoryVargyam},
		{"వర్జ్యం", models.CategoryVargyam},
		{"Abhijit Muhurat", models.CategoryAbhijit},
		{"అమృత ఘడియలు", models.CategoryAmrit},
		{"Brahma Muhurtham", models.CategoryBrahma},
		{"విజయ ముహూర్తం", models.CategoryVijaya},
		{"గోధూళి వేళ", models.CategoryGodhuli},
		{"సంధ్యా కాలం", models.CategorySandhya},
		{"నిశీథ కాలం", models.CategoryNishita},
		// Auspicious-sounding but not a named category.
		{"Shubha Muhurtham", models.CategoryMuhurtham},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			got, ok := DetectCategory(tc.label)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDetectCategoryIgnoresDescriptiveRows(t *testing.T) {
	for _, label := range []string{"Tithi", "Nakshatra", "Sunrise", "", "సూర్యోదయం"} {
		_, ok := DetectCategory(label)
		assert.False(t, ok, label)
	}
}

func TestIsPlaceholder(t *testing.T) {
	for _, v := range []string{"", "  ", "None", "none", "N/A", "n/a"} {
		assert.True(t, IsPlaceholder(v), "%q", v)
	}
	assert.False(t, IsPlaceholder("08:12 PM - 09:45 PM"))
}

func TestMergePrefersNonPlaceholder(t *testing.T) {
	payload := models.DailyPanchang{
		Date: "2026-08-31",
		Sections: []models.PayloadSection{
			{Title: "దుర్ముహూర్తాలు", Items: []models.PayloadItem{
				{Label: "వర్జ్యం", Value: "None"},
			}},
			{Title: "ఇతర వివరాలు", Items: []models.PayloadItem{
				{Label: "వర్జ్యం", Value: "08:12 PM - 09:45 PM"},
			}},
		},
	}

	merged := MergeSections(payload, "Monday")
	item := findCategory(merged, models.CategoryVargyam)
	require.NotNil(t, item)
	assert.Equal(t, "08:12 PM - 09:45 PM", item.RawValue)
}

func TestMergeFirstNonPlaceholderWins(t *testing.T) {
	payload := models.DailyPanchang{
		Sections: []models.PayloadSection{
			{Items: []models.PayloadItem{
				{Label: "వర్జ్యం", Value: "08:12 PM - 09:45 PM"},
				{Label: "వర్జ్యం", Value: "09:00 PM - 10:00 PM"},
				{Label: "వర్జ్యం", Value: "None"},
			}},
		},
	}

	merged := MergeSections(payload, "Monday")
	item := findCategory(merged, models.CategoryVargyam)
	require.NotNil(t, item)
	assert.Equal(t, "08:12 PM - 09:45 PM", item.RawValue,
		"first real value wins; later placeholders never overwrite")
}

func TestMergeFixedTableOverride(t *testing.T) {
	payload := models.DailyPanchang{
		Sections: []models.PayloadSection{
			{Items: []models.PayloadItem{
				{Label: "Rahu Kalam", Value: "None"},
			}},
		},
	}

	merged := MergeSections(payload, "Monday")
	item := findCategory(merged, models.CategoryRahu)
	require.NotNil(t, item)
	assert.Equal(t, LookupFixedWindows("Monday").Rahu, item.RawValue)
}

func TestMergeSynthesizesMissingFixedCategories(t *testing.T) {
	merged := MergeSections(models.DailyPanchang{}, "Wednesday")

	fixed := LookupFixedWindows("Wednesday")
	for _, tc := range []struct {
		cat  models.Category
		want string
	}{
		{models.CategoryRahu, fixed.Rahu},
		{models.CategoryYama, fixed.Yama},
		{models.CategoryGulika, fixed.Gulika},
	} {
		item := findCategory(merged, tc.cat)
		require.NotNil(t, item, string(tc.cat))
		assert.Equal(t, tc.want, item.RawValue)
	}

	// No fixed-table fallback for these: absent stays absent.
	assert.Nil(t, findCategory(merged, models.CategoryVargyam))
	assert.Nil(t, findCategory(merged, models.CategoryDurmuhurtham))
}

func TestMergeIdempotent(t *testing.T) {
	payload := models.DailyPanchang{
		Sections: []models.PayloadSection{
			{Title: "A", Items: []models.PayloadItem{
				{Label: "Rahu Kalam", Value: "04:30 PM - 06:00 PM"},
				{Label: "వర్జ్యం", Value: "None"},
				{Label: "Nakshatra", Value: "Rohini"},
			}},
			{Title: "B", Items: []models.PayloadItem{
				{Label: "వర్జ్యం", Value: "08:12 PM - 09:45 PM"},
			}},
		},
	}

	first := MergeSections(payload, "Sunday")
	second := MergeSections(payload, "Sunday")
	assert.Equal(t, first, second)
}

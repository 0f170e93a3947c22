package extract

import (
	"testing"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestComponents_AllPresent(t *testing.T) {
	record := domain.ExportRecord{
		"Basal Metabolic Rate": "1650",
		"TEF":                  "210",
		"Exercise":             "-450", // magnitudes are absolute
		"Tracker Activity":     "380",
		"Baseline":             "120",
	}

	comps := Components(record)

	assert.True(t, comps.HasAllCore)
	assert.Empty(t, comps.Missing)
	assert.Equal(t, 450.0, comps.Values[domain.ComponentExercise])
	assert.InDelta(t, 2690.0, comps.TotalCore, 0.001)
	assert.InDelta(t, 2810.0, comps.TotalWithBaseline, 0.001)
}

func TestComponents_MissingTracked(t *testing.T) {
	record := domain.ExportRecord{
		"BMR":      "1650",
		"Exercise": "450",
	}

	comps := Components(record)

	assert.False(t, comps.HasAllCore)
	assert.Equal(t, []string{
		domain.ComponentThermicEffect,
		domain.ComponentTrackerActivity,
	}, comps.Missing)
	assert.InDelta(t, 2100.0, comps.TotalCore, 0.001)
	// no baseline: both totals agree
	assert.Equal(t, comps.TotalCore, comps.TotalWithBaseline)
}

func TestComponents_CompletenessInvariant(t *testing.T) {
	// hasAllCore and a non-empty missing list are mutually exclusive
	records := []domain.ExportRecord{
		{},
		{"BMR": "1650"},
		{"BMR": "1650", "TEF": "210", "Exercise": "450", "Tracker Activity": "380"},
	}

	for _, record := range records {
		comps := Components(record)
		assert.Equal(t, len(comps.Missing) == 0, comps.HasAllCore)
	}
}

func TestComponentsFromValues_BaselineOptional(t *testing.T) {
	v := func(f float64) *float64 { return &f }

	comps := ComponentsFromValues(map[string]*float64{
		domain.ComponentBasalRate:       v(1650),
		domain.ComponentThermicEffect:   v(210),
		domain.ComponentExercise:        v(450),
		domain.ComponentTrackerActivity: v(380),
	})

	assert.True(t, comps.HasAllCore)
	assert.NotContains(t, comps.Missing, domain.ComponentBaseline)
	assert.Equal(t, comps.TotalCore, comps.TotalWithBaseline)
}

package extract

import (
	"math"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
)

// componentAliases maps each expenditure component to its export field
// aliases in priority order. First match wins.
var componentAliases = []struct {
	Name    string
	Aliases []string
}{
	{domain.ComponentBasalRate, []string{
		"Basal Metabolic Rate", "BMR", "Resting Metabolic Rate", "RMR", "Basal Rate",
	}},
	{domain.ComponentThermicEffect, []string{
		"Thermic Effect of Food", "TEF", "Food Thermic Effect", "Diet Induced Thermogenesis",
	}},
	{domain.ComponentExercise, []string{
		"Exercise", "Exercise Calories", "Workout Calories",
	}},
	{domain.ComponentTrackerActivity, []string{
		"Tracker Activity", "Activity Calories", "Device Activity", "Activity",
	}},
	{domain.ComponentBaseline, []string{
		"Baseline", "Baseline Activity",
	}},
}

// Components extracts the component breakdown from an export row. Magnitudes
// are absolute values; a component is present or absent, never NaN.
func Components(record domain.ExportRecord) domain.ExpenditureComponents {
	values := make(map[string]*float64, len(componentAliases))
	for _, c := range componentAliases {
		if m := Field(record, c.Aliases...); m != nil {
			v := m.Value
			values[c.Name] = &v
		} else {
			values[c.Name] = nil
		}
	}
	return ComponentsFromValues(values)
}

// ComponentsFromValues builds the breakdown from already-located numbers,
// e.g. a scraped entry's fields. Nil means absent.
func ComponentsFromValues(values map[string]*float64) domain.ExpenditureComponents {
	comps := domain.ExpenditureComponents{
		Values: make(map[string]float64, len(values)),
	}

	for _, name := range domain.CoreComponents() {
		v := values[name]
		if v == nil {
			comps.Missing = append(comps.Missing, name)
			continue
		}
		mag := math.Abs(*v)
		comps.Values[name] = mag
		comps.TotalCore += mag
	}

	comps.HasAllCore = len(comps.Missing) == 0
	comps.TotalWithBaseline = comps.TotalCore
	if v := values[domain.ComponentBaseline]; v != nil {
		mag := math.Abs(*v)
		comps.Values[domain.ComponentBaseline] = mag
		comps.TotalWithBaseline += mag
	}
	return comps
}

package extract

import (
	"math"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
)

var intakeAliases = []string{
	"calories", "Calories", "Calories Consumed", "Energy (kcal)", "Intake",
}

var targetAliases = []string{
	"Calorie Target", "Target", "Calorie Budget", "Budget", "Goal",
}

var remainingAliases = []string{
	"Calories Remaining", "Remaining", "Remaining (kcal)",
}

// burnedAliases is the fixed priority order for a direct aggregate burned
// field in the export, each alias carrying its own provenance label.
var burnedAliases = []struct {
	Key    string
	Source domain.BurnedSource
}{
	{"Energy Burned (kcal)", "export_energy_burned"},
	{"Energy Burned", "export_energy_burned"},
	{"Calories Burned", "export_calories_burned"},
	{"Total Burned", "export_total_burned"},
	{"TDEE", "export_tdee"},
	{"Total Daily Energy Expenditure", "export_tdee"},
	{"Expenditure", "export_expenditure"},
}

// Intake returns the day's consumed calories from the export, if present.
func Intake(record domain.ExportRecord) *FieldMatch {
	return Field(record, intakeAliases...)
}

// TargetInference is an inferred energy target and how it was derived.
type TargetInference struct {
	Target float64
	Source string
}

// InferTarget looks for an explicit target/budget field first; failing that
// it combines a "remaining" field with the day's intake. Nil when neither
// derivation is possible.
func InferTarget(record domain.ExportRecord) *TargetInference {
	if m := Field(record, targetAliases...); m != nil {
		return &TargetInference{Target: math.Abs(m.Value), Source: "export_target_field"}
	}
	remaining := Field(record, remainingAliases...)
	intake := Field(record, intakeAliases...)
	if remaining != nil && intake != nil {
		return &TargetInference{
			Target: intake.Value + remaining.Value,
			Source: "export_intake_plus_remaining",
		}
	}
	return nil
}

// BurnedInference is a direct aggregate burned figure found in the export.
// Component reconstruction is the component extractor's job, not this one's.
type BurnedInference struct {
	Signal domain.DirectExpenditureSignal
	Source domain.BurnedSource
}

// InferBurned returns the first matching aggregate burned/expenditure field
// in fixed alias priority order, or nil.
func InferBurned(record domain.ExportRecord) *BurnedInference {
	for _, alias := range burnedAliases {
		if m := Field(record, alias.Key); m != nil {
			return &BurnedInference{
				Signal: domain.DirectExpenditureSignal{
					TotalBurned: math.Abs(m.Value),
					RawTotal:    m.Value,
				},
				Source: alias.Source,
			}
		}
	}
	return nil
}

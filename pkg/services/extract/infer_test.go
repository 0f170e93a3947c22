package extract

import (
	"testing"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferTarget_ExplicitFieldWins(t *testing.T) {
	record := domain.ExportRecord{
		"Calorie Target":     "2000",
		"Calories":           "1800",
		"Calories Remaining": "400",
	}

	inf := InferTarget(record)
	require.NotNil(t, inf)
	assert.Equal(t, 2000.0, inf.Target)
	assert.Equal(t, "export_target_field", inf.Source)
}

func TestInferTarget_IntakePlusRemaining(t *testing.T) {
	record := domain.ExportRecord{
		"calories":           "1800",
		"Calories Remaining": "400",
	}

	inf := InferTarget(record)
	require.NotNil(t, inf)
	assert.Equal(t, 2200.0, inf.Target)
	assert.Equal(t, "export_intake_plus_remaining", inf.Source)
}

func TestInferTarget_Absent(t *testing.T) {
	// remaining alone is not enough
	assert.Nil(t, InferTarget(domain.ExportRecord{"Calories Remaining": "400"}))
	assert.Nil(t, InferTarget(domain.ExportRecord{}))
}

func TestInferBurned_AliasPriority(t *testing.T) {
	record := domain.ExportRecord{
		"TDEE":                "2800",
		"Energy Burned (kcal)": "2750",
	}

	inf := InferBurned(record)
	require.NotNil(t, inf)
	assert.Equal(t, 2750.0, inf.Signal.TotalBurned)
	assert.Equal(t, domain.BurnedSource("export_energy_burned"), inf.Source)
}

func TestInferBurned_SignPreservedInRaw(t *testing.T) {
	inf := InferBurned(domain.ExportRecord{"Calories Burned": "−2,750"})
	require.NotNil(t, inf)
	assert.Equal(t, 2750.0, inf.Signal.TotalBurned)
	assert.Equal(t, -2750.0, inf.Signal.RawTotal)
	assert.Equal(t, domain.BurnedSource("export_calories_burned"), inf.Source)
}

func TestInferBurned_Absent(t *testing.T) {
	assert.Nil(t, InferBurned(domain.ExportRecord{"BMR": "1650"}))
}

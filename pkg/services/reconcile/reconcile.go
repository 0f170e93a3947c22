package reconcile

import (
	"math"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/fit-tools/energy-atlas/pkg/services/extract"
	"github.com/fit-tools/energy-atlas/pkg/services/scrape"
)

// DayInput gathers everything known about one calendar day before
// reconciliation. Any of the sources may be absent.
type DayInput struct {
	Date          string
	Export        domain.ExportRecord
	Scrape        *scrape.NormalizedDay
	ExerciseTotal *ExerciseTotals
}

// ExerciseTotals aggregates all exercise-log rows for one date.
type ExerciseTotals struct {
	Abs   float64
	Raw   float64
	Count int
}

// SumExerciseLog folds log rows into per-date totals. Magnitudes sum
// absolutely; the raw sum preserves source signs for diagnostics.
func SumExerciseLog(rows []domain.ExerciseLogRecord) map[string]ExerciseTotals {
	totals := make(map[string]ExerciseTotals)
	for _, row := range rows {
		t := totals[row.Date]
		t.Abs += math.Abs(row.CaloriesBurned)
		t.Raw += row.CaloriesBurned
		t.Count++
		totals[row.Date] = t
	}
	return totals
}

// Reconcile merges one day's sources into a single burned-calorie figure
// with provenance. Selection order, first applicable wins:
//
//  1. the scrape's resolved burn figure, carrying the tag the resolution
//     itself produced (direct total, plausible balance, or component sum),
//  2. export component breakdown, complete then partial,
//  3. export direct inferred-burned field, tagged with its own label,
//  4. exercise-log absolute total, covering activity only,
//  5. none, a reconciliation failure for the day, never a zero.
//
// Sources that decompose expenditure are preferred over opaque totals, and
// the live scrape of the primary UI is preferred over the export's possibly
// stale derived columns.
func Reconcile(in DayInput) domain.ReconciledDay {
	day := domain.ReconciledDay{
		Date:            in.Date,
		BurnedSource:    domain.BurnedSourceNone,
		BurnedBreakdown: map[string]float64{},
	}

	if m := extract.Intake(in.Export); m != nil {
		day.ConsumedCalories = math.Abs(m.Value)
	}
	if t := extract.InferTarget(in.Export); t != nil {
		target := t.Target
		day.TargetCalories = &target
		day.TargetSource = t.Source
	}

	switch {
	case in.Scrape != nil && in.Scrape.ResolvedBurnedTotal > 0:
		day.BurnedCalories = in.Scrape.ResolvedBurnedTotal
		day.BurnedRawCalories = in.Scrape.ResolvedBurnedRaw
		day.BurnedSource = in.Scrape.ResolvedBurnedSource
		for name, v := range in.Scrape.Components.Values {
			day.BurnedBreakdown[name] = v
		}
		if in.Scrape.Direct != nil {
			day.BurnedBreakdown[scrape.MetricEnergyBurned] = in.Scrape.Direct.TotalBurned
		}
		day.MissingBurnComponents = in.Scrape.Components.Missing

	case in.Export != nil && exportComponents(in.Export, &day):
		// tag and breakdown set by exportComponents

	case in.Export != nil && exportInferred(in.Export, &day):
		// aggregate figure covers all components

	case in.ExerciseTotal != nil && in.ExerciseTotal.Abs > 0:
		day.BurnedCalories = in.ExerciseTotal.Abs
		day.BurnedRawCalories = in.ExerciseTotal.Raw
		day.BurnedSource = domain.BurnedSourceExerciseExport
		day.BurnedBreakdown[domain.ComponentExercise] = in.ExerciseTotal.Abs
		// exercise logs only cover activity
		day.MissingBurnComponents = []string{
			domain.ComponentBasalRate,
			domain.ComponentThermicEffect,
		}
	}

	day.NetCalories = day.ConsumedCalories - day.BurnedCalories
	day.Status = statusOf(day.NetCalories)
	return day
}

func exportComponents(record domain.ExportRecord, day *domain.ReconciledDay) bool {
	comps := extract.Components(record)
	if comps.TotalWithBaseline <= 0 {
		return false
	}
	day.BurnedCalories = comps.TotalWithBaseline
	day.BurnedRawCalories = comps.TotalWithBaseline
	if comps.HasAllCore {
		day.BurnedSource = domain.BurnedSourceNutritionComplete
	} else {
		day.BurnedSource = domain.BurnedSourceNutritionPartial
	}
	for name, v := range comps.Values {
		day.BurnedBreakdown[name] = v
	}
	day.MissingBurnComponents = comps.Missing
	return true
}

func exportInferred(record domain.ExportRecord, day *domain.ReconciledDay) bool {
	inf := extract.InferBurned(record)
	if inf == nil || inf.Signal.TotalBurned <= 0 {
		return false
	}
	day.BurnedCalories = inf.Signal.TotalBurned
	day.BurnedRawCalories = inf.Signal.RawTotal
	day.BurnedSource = inf.Source
	day.BurnedBreakdown[string(inf.Source)] = inf.Signal.TotalBurned
	return true
}

func statusOf(net float64) domain.BalanceStatus {
	switch {
	case net < 0:
		return domain.StatusDeficit
	case net > 0:
		return domain.StatusSurplus
	}
	return domain.StatusBalanced
}

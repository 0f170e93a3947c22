package reconcile

import (
	"fmt"
	"math"
	"strings"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
)

// UnreconciledRangeError aborts a range computation when any included day
// produced no usable burned figure. Substituting zero would silently bias
// every downstream average, so the whole range fails with the offending
// dates attached.
type UnreconciledRangeError struct {
	Dates []string
}

func (e *UnreconciledRangeError) Error() string {
	return fmt.Sprintf("no usable expenditure source for %d day(s): %s",
		len(e.Dates), strings.Join(e.Dates, ", "))
}

// Aggregate folds reconciled days into range totals, averages and
// data-quality diagnostics. Days are summed unconditionally once none of
// them is unreconciled.
func Aggregate(days []domain.ReconciledDay) (domain.RangeSummary, error) {
	summary := domain.RangeSummary{
		DaysUsed:               len(days),
		AverageStatus:          domain.StatusBalanced,
		DataQuality:            domain.QualityNoDays,
		MissingComponentCounts: map[string]int{},
		BurnedSourceCounts:     map[string]int{},
	}
	if len(days) == 0 {
		return summary, nil
	}

	var unreconciled []string
	for _, day := range days {
		if day.BurnedSource == domain.BurnedSourceNone {
			unreconciled = append(unreconciled, day.Date)
		}
	}
	if len(unreconciled) > 0 {
		return domain.RangeSummary{}, &UnreconciledRangeError{Dates: unreconciled}
	}

	summary.DataQuality = domain.QualityComplete
	for _, day := range days {
		summary.TotalConsumedCalories += day.ConsumedCalories
		summary.TotalBurnedCalories += day.BurnedCalories
		summary.TotalNetCalories += day.NetCalories

		summary.BurnedSourceCounts[string(day.BurnedSource)]++
		for _, name := range day.MissingBurnComponents {
			summary.MissingComponentCounts[name]++
		}

		if day.BurnedSource.IsComponentComplete() {
			summary.DaysComplete++
		} else {
			summary.DaysIncomplete++
			summary.DataQuality = domain.QualityIncomplete
		}
	}

	avg := summary.TotalNetCalories / float64(len(days))
	summary.AverageNetPerDay = round2(avg)
	switch {
	case summary.AverageNetPerDay < 0:
		summary.AverageStatus = domain.StatusDeficit
		summary.AverageDeficit = -summary.AverageNetPerDay
	case summary.AverageNetPerDay > 0:
		summary.AverageStatus = domain.StatusSurplus
		summary.AverageSurplus = summary.AverageNetPerDay
	}
	return summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

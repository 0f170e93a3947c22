package adapters

import (
	"maps"

	"github.com/fit-tools/energy-atlas/pkg/models/api"
	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/fit-tools/energy-atlas/pkg/services/balance"
)

func MapReconciledDayDomainToApi(day domain.ReconciledDay) api.DayBalance {
	return api.DayBalance{
		Date:                  day.Date,
		ConsumedCalories:      day.ConsumedCalories,
		BurnedCalories:        day.BurnedCalories,
		BurnedRawCalories:     day.BurnedRawCalories,
		BurnedSource:          string(day.BurnedSource),
		BurnedBreakdown:       maps.Clone(day.BurnedBreakdown),
		MissingBurnComponents: day.MissingBurnComponents,
		TargetCalories:        day.TargetCalories,
		TargetSource:          day.TargetSource,
		NetCalories:           day.NetCalories,
		Status:                string(day.Status),
	}
}

func MapRangeSummaryDomainToApi(summary domain.RangeSummary) api.RangeSummary {
	return api.RangeSummary{
		DaysUsed:               summary.DaysUsed,
		TotalConsumedCalories:  summary.TotalConsumedCalories,
		TotalBurnedCalories:    summary.TotalBurnedCalories,
		TotalNetCalories:       summary.TotalNetCalories,
		AverageNetPerDay:       summary.AverageNetPerDay,
		AverageDeficit:         summary.AverageDeficit,
		AverageSurplus:         summary.AverageSurplus,
		AverageStatus:          string(summary.AverageStatus),
		DataQuality:            string(summary.DataQuality),
		DaysComplete:           summary.DaysComplete,
		DaysIncomplete:         summary.DaysIncomplete,
		MissingComponentCounts: maps.Clone(summary.MissingComponentCounts),
		BurnedSourceCounts:     maps.Clone(summary.BurnedSourceCounts),
	}
}

func MapRangeReportDomainToApi(profile string, report *balance.Report) api.RangeReport {
	apiReport := api.RangeReport{
		Profile: profile,
		Period: api.TimePeriod{
			Start:    report.From,
			End:      report.To,
			Duration: int(report.To.Sub(report.From).Hours()/24) + 1,
		},
		Summary: MapRangeSummaryDomainToApi(report.Summary),
		Days:    []api.DayBalance{},
	}
	for _, day := range report.Days {
		apiReport.Days = append(apiReport.Days, MapReconciledDayDomainToApi(day))
	}
	return apiReport
}

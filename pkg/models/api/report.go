package api

import "time"

type Profile struct {
	Name string `json:"name"`
}

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type DayBalance struct {
	Date                  string             `json:"date"`
	ConsumedCalories      float64            `json:"consumed_calories"`
	BurnedCalories        float64            `json:"burned_calories"`
	BurnedRawCalories     float64            `json:"burned_raw_calories"`
	BurnedSource          string             `json:"burned_source"`
	BurnedBreakdown       map[string]float64 `json:"burned_breakdown"`
	MissingBurnComponents []string           `json:"missing_burn_components,omitempty"`
	TargetCalories        *float64           `json:"target_calories,omitempty"`
	TargetSource          string             `json:"target_source,omitempty"`
	NetCalories           float64            `json:"net_calories"`
	Status                string             `json:"status"`
}

type RangeSummary struct {
	DaysUsed               int            `json:"days_used"`
	TotalConsumedCalories  float64        `json:"total_consumed_calories"`
	TotalBurnedCalories    float64        `json:"total_burned_calories"`
	TotalNetCalories       float64        `json:"total_net_calories"`
	AverageNetPerDay       float64        `json:"average_net_calories_per_day"`
	AverageDeficit         float64        `json:"average_deficit"`
	AverageSurplus         float64        `json:"average_surplus"`
	AverageStatus          string         `json:"average_status"`
	DataQuality            string         `json:"data_quality"`
	DaysComplete           int            `json:"days_complete"`
	DaysIncomplete         int            `json:"days_incomplete"`
	MissingComponentCounts map[string]int `json:"missing_component_counts,omitempty"`
	BurnedSourceCounts     map[string]int `json:"burned_source_counts,omitempty"`
}

type RangeReport struct {
	Profile string       `json:"profile"`
	Period  TimePeriod   `json:"period"`
	Summary RangeSummary `json:"summary"`
	Days    []DayBalance `json:"days"`
}

// UnreconciledError is the 503 payload when a range cannot be computed.
type UnreconciledError struct {
	Error             string   `json:"error"`
	UnreconciledDates []string `json:"unreconciled_dates"`
}

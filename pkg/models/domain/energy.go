package domain

// Component keys for the physiologically distinct contributors to daily
// energy expenditure. Baseline is optional and never counted as missing.
const (
	ComponentBasalRate       = "bmr"
	ComponentThermicEffect   = "tef"
	ComponentExercise        = "exercise"
	ComponentTrackerActivity = "tracker_activity"
	ComponentBaseline        = "baseline"
)

// CoreComponents returns the four required component keys in reporting order.
func CoreComponents() []string {
	return []string{
		ComponentBasalRate,
		ComponentThermicEffect,
		ComponentExercise,
		ComponentTrackerActivity,
	}
}

// ExpenditureComponents holds the per-day component breakdown extracted from
// one source. Values are magnitudes; a key is present only when the source
// reported a finite number for it.
type ExpenditureComponents struct {
	Values            map[string]float64
	Missing           []string
	HasAllCore        bool
	TotalCore         float64
	TotalWithBaseline float64
}

// DirectExpenditureSignal is a single aggregate expenditure number reported
// by a source instead of (or in addition to) a component breakdown.
type DirectExpenditureSignal struct {
	TotalBurned float64
	RawTotal    float64
}

// BurnedSource identifies which rule and upstream source produced a day's
// burned-calorie figure.
type BurnedSource string

const (
	BurnedSourceScrapeEnergyTotal BurnedSource = "scrape_energy_burned_total"
	BurnedSourceScrapeBalance     BurnedSource = "scrape_energy_balance"
	BurnedSourceScrapeComplete    BurnedSource = "scrape_components_complete"
	BurnedSourceScrapePartial     BurnedSource = "scrape_components_partial"
	BurnedSourceNutritionComplete BurnedSource = "nutrition_components_complete"
	BurnedSourceNutritionPartial  BurnedSource = "nutrition_components_partial"
	BurnedSourceExerciseExport    BurnedSource = "exercise_export_abs"
	BurnedSourceNone              BurnedSource = "none"
)

// IsComponentComplete reports whether the tag denotes a fully trusted figure:
// either a reported total from the primary UI or a complete component set.
// Balance-derived, partial, inferred and exercise-only figures are not.
func (s BurnedSource) IsComponentComplete() bool {
	switch s {
	case BurnedSourceScrapeEnergyTotal, BurnedSourceScrapeComplete, BurnedSourceNutritionComplete:
		return true
	}
	return false
}

type BalanceStatus string

const (
	StatusDeficit  BalanceStatus = "deficit"
	StatusSurplus  BalanceStatus = "surplus"
	StatusBalanced BalanceStatus = "balanced"
)

// ReconciledDay is the reconciler output for one calendar day.
type ReconciledDay struct {
	Date                  string
	ConsumedCalories      float64
	BurnedCalories        float64
	BurnedRawCalories     float64
	BurnedSource          BurnedSource
	BurnedBreakdown       map[string]float64
	MissingBurnComponents []string
	TargetCalories        *float64
	TargetSource          string
	NetCalories           float64
	Status                BalanceStatus
}

type DataQuality string

const (
	QualityComplete   DataQuality = "component_complete"
	QualityIncomplete DataQuality = "component_incomplete"
	QualityNoDays     DataQuality = "no_completed_days"
)

// RangeSummary aggregates reconciled days over a requested window. Computed
// fresh per request, never cached.
type RangeSummary struct {
	DaysUsed               int
	TotalConsumedCalories  float64
	TotalBurnedCalories    float64
	TotalNetCalories       float64
	AverageNetPerDay       float64
	AverageDeficit         float64
	AverageSurplus         float64
	AverageStatus          BalanceStatus
	DataQuality            DataQuality
	DaysComplete           int
	DaysIncomplete         int
	MissingComponentCounts map[string]int
	BurnedSourceCounts     map[string]int
}

package domain

// ExportRecord is one day's row from the structured export: human-readable
// field labels mapped to raw string/number values. Alias lists in the
// extract service are matched against these exact label strings.
type ExportRecord map[string]any

// ExportDay pairs an export row with the calendar day it describes and the
// tracker's completion flag for that day.
type ExportDay struct {
	Date      string
	Completed bool
	Fields    ExportRecord
}

// ScrapedEntry is one day's summary as read from a live page render by the
// browser collaborator. Values are nil when the page did not yield a number.
type ScrapedEntry struct {
	Date            string   `json:"date"`
	BMR             *float64 `json:"bmr"`
	TEF             *float64 `json:"tef"`
	Exercise        *float64 `json:"exercise"`
	TrackerActivity *float64 `json:"trackerActivity"`
	Baseline        *float64 `json:"baseline"`
	EnergyBurned    *float64 `json:"energyBurned"`
	EnergyBalance   *float64 `json:"energyBalance"`
}

// ExerciseLogRecord is one logged activity; multiple rows may share a date.
type ExerciseLogRecord struct {
	Date           string
	Exercise       string
	CaloriesBurned float64
}

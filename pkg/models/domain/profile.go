package domain

// Profile is one tracked account and the locations of its source data.
type Profile struct {
	Name            string
	ExportPath      string
	ExerciseLogPath string
	ScrapeDumpPath  string
}

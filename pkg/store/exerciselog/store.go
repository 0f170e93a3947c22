// Package exerciselog reads the exercise-log CSV: one row per logged
// activity, multiple rows per date allowed.
package exerciselog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/fit-tools/energy-atlas/pkg/services/extract"
)

const dateLayout = "2006-01-02"

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) GetEntries(_ context.Context, from, to time.Time) ([]domain.ExerciseLogRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open exercise log: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse exercise log: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("exercise log %s has no header row", s.path)
	}

	dateCol, exerciseCol, caloriesCol := columns(rows[0])
	if dateCol < 0 || caloriesCol < 0 {
		return nil, fmt.Errorf("exercise log %s is missing date or calories column", s.path)
	}

	var records []domain.ExerciseLogRecord
	for _, row := range rows[1:] {
		if dateCol >= len(row) || caloriesCol >= len(row) {
			continue
		}
		date := strings.TrimSpace(row[dateCol])
		day, err := time.Parse(dateLayout, date)
		if err != nil || day.Before(from) || day.After(to) {
			continue
		}
		calories, ok := extract.ParseNumber(row[caloriesCol])
		if !ok {
			continue
		}
		record := domain.ExerciseLogRecord{Date: date, CaloriesBurned: calories}
		if exerciseCol >= 0 && exerciseCol < len(row) {
			record.Exercise = strings.TrimSpace(row[exerciseCol])
		}
		records = append(records, record)
	}
	return records, nil
}

func columns(header []string) (date, exercise, calories int) {
	date, exercise, calories = -1, -1, -1
	for i, label := range header {
		switch normalized := strings.ToLower(strings.TrimSpace(label)); {
		case normalized == "date":
			date = i
		case strings.Contains(normalized, "exercise") && !strings.Contains(normalized, "calorie"):
			exercise = i
		case strings.Contains(normalized, "calorie") || strings.Contains(normalized, "burned"):
			calories = i
		}
	}
	return date, exercise, calories
}

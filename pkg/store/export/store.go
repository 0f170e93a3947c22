// Package export reads the structured daily export produced by the external
// export command: a CSV whose header row carries the tracker's human-readable
// field labels.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

var dateAliases = []string{"Date", "date", "Day"}
var completedAliases = []string{"Completed", "completed", "Day Complete"}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// GetDays parses the export file and returns rows whose date falls in
// [from, to]. Field values stay raw strings; parsing is the extract
// service's job.
func (s *Store) GetDays(_ context.Context, from, to time.Time) ([]domain.ExportDay, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse export file: %w", err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("export file %s has no header row", s.path)
	}

	header := rows[0]
	var days []domain.ExportDay
	for _, row := range rows[1:] {
		fields := make(domain.ExportRecord, len(header))
		for i, label := range header {
			if i < len(row) {
				fields[label] = row[i]
			}
		}

		date, ok := recordDate(fields)
		if !ok {
			continue
		}
		day, err := time.Parse(dateLayout, date)
		if err != nil || day.Before(from) || day.After(to) {
			continue
		}

		days = append(days, domain.ExportDay{
			Date:      date,
			Completed: recordCompleted(fields),
			Fields:    fields,
		})
	}
	return days, nil
}

func recordDate(fields domain.ExportRecord) (string, bool) {
	for _, alias := range dateAliases {
		if v, ok := fields[alias].(string); ok && v != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

func recordCompleted(fields domain.ExportRecord) bool {
	for _, alias := range completedAliases {
		v, ok := fields[alias].(string)
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1", "completed":
			return true
		default:
			return false
		}
	}
	// rows without a completion column count as completed
	return true
}

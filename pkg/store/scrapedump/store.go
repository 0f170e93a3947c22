// Package scrapedump reads scraped daily summaries from a JSON dump written
// by the browser collaborator, so ranges can be recomputed without redriving
// a browser session.
package scrapedump

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// GetEntries returns the dumped entries for the requested dates, preserving
// the requested (newest-first) order. Dates without an entry are simply
// absent from the result.
func (s *Store) GetEntries(_ context.Context, dates []string) ([]domain.ScrapedEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scrape dump: %w", err)
	}

	var all []domain.ScrapedEntry
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to parse scrape dump: %w", err)
	}

	byDate := make(map[string]domain.ScrapedEntry, len(all))
	for _, entry := range all {
		byDate[entry.Date] = entry
	}

	var entries []domain.ScrapedEntry
	for _, date := range dates {
		if entry, ok := byDate[date]; ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

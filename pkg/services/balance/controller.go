package balance

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/fit-tools/energy-atlas/pkg/services/reconcile"
	"github.com/fit-tools/energy-atlas/pkg/services/scrape"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// ExportSource yields structured export rows for a date range.
type ExportSource interface {
	GetDays(ctx context.Context, from, to time.Time) ([]domain.ExportDay, error)
}

// ScrapeSource yields scraped daily summaries for the requested dates.
// Dates are supplied newest-first so a day-stepping browser session can walk
// backward monotonically from today.
type ScrapeSource interface {
	GetEntries(ctx context.Context, dates []string) ([]domain.ScrapedEntry, error)
}

// ExerciseSource yields exercise-log rows for a date range.
type ExerciseSource interface {
	GetEntries(ctx context.Context, from, to time.Time) ([]domain.ExerciseLogRecord, error)
}

// Report is one computed range: the summary plus per-day detail.
type Report struct {
	From    time.Time
	To      time.Time
	Summary domain.RangeSummary
	Days    []domain.ReconciledDay
}

type Controller interface {
	GetRangeReport(ctx context.Context, from, to time.Time) (*Report, error)
}

type controller struct {
	export   ExportSource
	scrape   ScrapeSource
	exercise ExerciseSource
	now      func() time.Time
}

// Option overrides controller defaults; used by tests to pin the clock.
type Option func(*controller)

func WithClock(now func() time.Time) Option {
	return func(c *controller) { c.now = now }
}

func NewController(export ExportSource, scrapeSrc ScrapeSource, exercise ExerciseSource, opts ...Option) Controller {
	c := &controller{
		export:   export,
		scrape:   scrapeSrc,
		exercise: exercise,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetRangeReport fetches the three sources concurrently, filters to
// completed not-today days, reconciles each day and aggregates. A failing
// source is treated as absent and its days fall through the reconciler's
// priority order; only a day failing every tier aborts the range.
func (c *controller) GetRangeReport(ctx context.Context, from, to time.Time) (*Report, error) {
	logger := zerolog.Ctx(ctx)
	dates := c.rangeDates(from, to)

	var (
		wg           sync.WaitGroup
		exportDays   []domain.ExportDay
		scrapeDays   []domain.ScrapedEntry
		exerciseRows []domain.ExerciseLogRecord
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		days, err := c.export.GetDays(ctx, from, to)
		if err != nil {
			logger.Warn().Err(err).Msg("export source unavailable, falling through")
			return
		}
		exportDays = days
	}()
	go func() {
		defer wg.Done()
		entries, err := c.scrape.GetEntries(ctx, descending(dates))
		if err != nil {
			logger.Warn().Err(err).Msg("scrape source unavailable, falling through")
			return
		}
		scrapeDays = entries
	}()
	go func() {
		defer wg.Done()
		rows, err := c.exercise.GetEntries(ctx, from, to)
		if err != nil {
			logger.Warn().Err(err).Msg("exercise source unavailable, falling through")
			return
		}
		exerciseRows = rows
	}()
	wg.Wait()

	exportByDate := make(map[string]domain.ExportDay, len(exportDays))
	for _, d := range exportDays {
		exportByDate[d.Date] = d
	}
	scrapeByDate := make(map[string]scrape.NormalizedDay, len(scrapeDays))
	for _, e := range scrapeDays {
		scrapeByDate[e.Date] = scrape.Normalize(e)
	}
	exerciseByDate := reconcile.SumExerciseLog(exerciseRows)

	var reconciled []domain.ReconciledDay
	for _, date := range dates {
		exportDay, hasExport := exportByDate[date]
		if hasExport && !exportDay.Completed {
			continue
		}
		normalized, hasScrape := scrapeByDate[date]
		totals, hasExercise := exerciseByDate[date]
		if !hasExport && !hasScrape && !hasExercise {
			continue
		}

		in := reconcile.DayInput{Date: date}
		if hasExport {
			in.Export = exportDay.Fields
		}
		if hasScrape {
			in.Scrape = &normalized
		}
		if hasExercise {
			in.ExerciseTotal = &totals
		}
		reconciled = append(reconciled, reconcile.Reconcile(in))
	}

	summary, err := reconcile.Aggregate(reconciled)
	if err != nil {
		return nil, err
	}
	return &Report{From: from, To: to, Summary: summary, Days: reconciled}, nil
}

// rangeDates lists calendar days in [from, to] ascending, excluding today
// and anything later: only completed past days are eligible.
func (c *controller) rangeDates(from, to time.Time) []string {
	today := c.now().Format(dateLayout)
	var dates []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		if date >= today {
			break
		}
		dates = append(dates, date)
	}
	return dates
}

func descending(dates []string) []string {
	desc := make([]string, len(dates))
	copy(desc, dates)
	sort.Sort(sort.Reverse(sort.StringSlice(desc)))
	return desc
}

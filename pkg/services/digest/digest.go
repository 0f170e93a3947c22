// Package digest runs a scheduled rollup: once per cron tick it computes
// yesterday's balance for every profile and logs the outcome, so operators
// see reconciliation health without polling the API.
package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/fit-tools/energy-atlas/pkg/services/balance"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Scheduler struct {
	cron     *cron.Cron
	explorer balance.Explorer
	logger   zerolog.Logger
	now      func() time.Time
}

func NewScheduler(logger zerolog.Logger, explorer balance.Explorer, schedule string) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		explorer: explorer,
		logger:   logger,
		now:      time.Now,
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run() {
	ctx := s.logger.WithContext(context.Background())
	yesterday := s.now().AddDate(0, 0, -1)

	profiles, err := s.explorer.ListProfiles(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("digest: failed to list profiles")
		return
	}

	for _, profile := range profiles {
		ctrl, err := s.explorer.GetController(ctx, profile.Name)
		if err != nil {
			s.logger.Error().Err(err).Str("profile", profile.Name).Msg("digest: failed to resolve profile")
			continue
		}

		report, err := ctrl.GetRangeReport(ctx, yesterday, yesterday)
		if err != nil {
			s.logger.Warn().Err(err).Str("profile", profile.Name).Msg("digest: report failed")
			continue
		}

		s.logger.Info().
			Str("profile", profile.Name).
			Str("date", yesterday.Format("2006-01-02")).
			Int("days_used", report.Summary.DaysUsed).
			Float64("net_calories", report.Summary.TotalNetCalories).
			Str("status", string(report.Summary.AverageStatus)).
			Str("data_quality", string(report.Summary.DataQuality)).
			Msg("digest: daily balance")
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/fit-tools/energy-atlas/pkg/adapters"
	"github.com/fit-tools/energy-atlas/pkg/services/balance"
	"github.com/fit-tools/energy-atlas/pkg/services/config"
	exportstore "github.com/fit-tools/energy-atlas/pkg/store/export"
	"github.com/fit-tools/energy-atlas/pkg/store/exerciselog"
	"github.com/fit-tools/energy-atlas/pkg/store/scrapedump"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

type reportCmd struct {
	profilesPath string
	profile      string
	exportPath   string
	exercisePath string
	scrapePath   string
	from         string
	to           string
	asJSON       bool
}

func newReportCmd() *cobra.Command {
	rc := &reportCmd{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute an energy balance report over a date range",
		RunE:  rc.run,
	}

	usr, _ := user.Current()
	defaultProfiles := fmt.Sprintf("%s/.energyatlas/profiles.ini", usr.HomeDir)

	cmd.Flags().StringVar(&rc.profilesPath, "profiles", defaultProfiles, "Path to the profiles file")
	cmd.Flags().StringVar(&rc.profile, "profile", "", "Profile to report on")
	cmd.Flags().StringVar(&rc.exportPath, "export", "", "Export CSV path (overrides profile)")
	cmd.Flags().StringVar(&rc.exercisePath, "exercise-log", "", "Exercise log CSV path (overrides profile)")
	cmd.Flags().StringVar(&rc.scrapePath, "scrape-dump", "", "Scrape dump JSON path (overrides profile)")
	cmd.Flags().StringVar(&rc.from, "from", "", "Range start (YYYY-MM-DD, default 7 days ago)")
	cmd.Flags().StringVar(&rc.to, "to", "", "Range end (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&rc.asJSON, "json", false, "Emit JSON instead of tables")

	return cmd
}

func (rc *reportCmd) run(cmd *cobra.Command, _ []string) error {
	now := time.Now()
	from, to := now.AddDate(0, 0, -7), now
	var err error
	if rc.from != "" {
		if from, err = time.Parse(dateLayout, rc.from); err != nil {
			return fmt.Errorf("invalid --from date %q: %w", rc.from, err)
		}
	}
	if rc.to != "" {
		if to, err = time.Parse(dateLayout, rc.to); err != nil {
			return fmt.Errorf("invalid --to date %q: %w", rc.to, err)
		}
	}

	ctrl, err := rc.controller(cmd.Context())
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	report, err := ctrl.GetRangeReport(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to compute report: %w", err)
	}

	if rc.asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(adapters.MapRangeReportDomainToApi(rc.profile, report))
	}
	renderReport(os.Stdout, report)
	return nil
}

// controller builds sources either from explicit file flags or from the
// named profile in the registry.
func (rc *reportCmd) controller(ctx context.Context) (balance.Controller, error) {
	if rc.exportPath != "" || rc.exercisePath != "" || rc.scrapePath != "" {
		return balance.NewController(
			exportstore.NewStore(rc.exportPath),
			scrapedump.NewStore(rc.scrapePath),
			exerciselog.NewStore(rc.exercisePath),
		), nil
	}
	if rc.profile == "" {
		return nil, fmt.Errorf("either --profile or explicit source paths are required")
	}
	registry, err := config.NewRegistry(rc.profilesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return balance.NewExplorer(registry).GetController(ctx, rc.profile)
}

func newProfilesCmd() *cobra.Command {
	var profilesPath string
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List configured profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := config.NewRegistry(profilesPath)
			if err != nil {
				return fmt.Errorf("failed to load profiles: %w", err)
			}
			names, err := registry.GetProfiles(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(os.Stdout, name)
			}
			return nil
		},
	}

	usr, _ := user.Current()
	defaultProfiles := fmt.Sprintf("%s/.energyatlas/profiles.ini", usr.HomeDir)
	cmd.Flags().StringVar(&profilesPath, "profiles", defaultProfiles, "Path to the profiles file")

	return cmd
}

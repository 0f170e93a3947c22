package main

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/fit-tools/energy-atlas/pkg/server"
	"github.com/fit-tools/energy-atlas/pkg/services/balance"
	"github.com/fit-tools/energy-atlas/pkg/services/config"
	"github.com/fit-tools/energy-atlas/pkg/services/digest"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	profilesPath string
	configPath   string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the energy-atlas web server",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultProfiles := fmt.Sprintf("%s/.energyatlas/profiles.ini", usr.HomeDir)

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", defaultProfiles,
		"Path to the profiles file (default is $HOME/.energyatlas/profiles.ini)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to the app config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := newLogger()

	appCfg, err := config.LoadAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	explorer := balance.NewExplorer(registry)

	ctx := logger.WithContext(context.Background())

	logger.Info().Msgf("Profiles found at `%s` successfully loaded.", profilesPath)
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Profile: `%s`", profile)
	}

	if appCfg.Digest.Enabled {
		scheduler, err := digest.NewScheduler(logger, explorer, appCfg.Digest.Schedule)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info().Str("schedule", appCfg.Digest.Schedule).Msg("digest scheduler started")
	}

	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		appCfg.Addr = addr
	}

	api := server.NewWebAPI(server.Config{
		Addr:            appCfg.Addr,
		ShutdownTimeout: appCfg.ShutdownTimeout,
		AllowedOrigins:  appCfg.AllowedOrigins,
		Dependencies: server.Dependencies{
			Explorer: explorer,
			Logger:   logger,
		},
	})

	return api.Start()
}

func newLogger() zerolog.Logger {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

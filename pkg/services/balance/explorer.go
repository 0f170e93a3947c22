package balance

import (
	"context"
	"fmt"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/fit-tools/energy-atlas/pkg/services/config"
	exportstore "github.com/fit-tools/energy-atlas/pkg/store/export"
	"github.com/fit-tools/energy-atlas/pkg/store/exerciselog"
	"github.com/fit-tools/energy-atlas/pkg/store/scrapedump"
)

// Explorer resolves profile names from the registry into controllers wired
// to that profile's file stores.
type Explorer interface {
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	GetController(ctx context.Context, profile string) (Controller, error)
}

type explorer struct {
	registry config.Registry
}

func NewExplorer(registry config.Registry) Explorer {
	return &explorer{registry: registry}
}

func (e *explorer) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	names, err := e.registry.GetProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	profiles := make([]domain.Profile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, domain.Profile{Name: name})
	}
	return profiles, nil
}

func (e *explorer) GetController(ctx context.Context, profile string) (Controller, error) {
	p, err := e.registry.GetProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	return NewController(
		exportstore.NewStore(p.ExportPath),
		scrapedump.NewStore(p.ScrapeDumpPath),
		exerciselog.NewStore(p.ExerciseLogPath),
	), nil
}

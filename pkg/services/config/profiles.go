package config

import (
	"context"
	"fmt"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads tracked-account profiles from an ini file, one section per
// profile:
//
//	[alice]
//	export_path = /data/alice/export.csv
//	exercise_log_path = /data/alice/exercise.csv
//	scrape_dump_path = /data/alice/scrape.json
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*domain.Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (*domain.Profile, error) {
	if !r.cfg.HasSection(name) {
		return nil, fmt.Errorf("profile %s not found", name)
	}
	section := r.cfg.Section(name)
	return &domain.Profile{
		Name:            name,
		ExportPath:      section.Key("export_path").String(),
		ExerciseLogPath: section.Key("exercise_log_path").String(),
		ScrapeDumpPath:  section.Key("scrape_dump_path").String(),
	}, nil
}

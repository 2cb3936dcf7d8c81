package config

import (
	"context"
	"fmt"

	"github.com/vallme2003/top-coder-challenge/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Registry reads tuning profiles from an INI file. Each section is a named
// profile overriding the default tuning constants.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetTuning(ctx context.Context, profile string) (domain.Tuning, error)
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

func (r *iniRegistry) GetTuning(_ context.Context, profile string) (domain.Tuning, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil {
		return domain.Tuning{}, fmt.Errorf("profile %s not found", profile)
	}

	defaults := domain.DefaultTuning()
	return domain.Tuning{
		PerDiem:             section.Key("per_diem").MustFloat64(defaults.PerDiem),
		FiveDayBonus:        section.Key("five_day_bonus").MustFloat64(defaults.FiveDayBonus),
		CentsBonus:          section.Key("cents_bonus").MustFloat64(defaults.CentsBonus),
		EfficiencySweetLow:  section.Key("efficiency_sweet_low").MustFloat64(defaults.EfficiencySweetLow),
		EfficiencySweetHigh: section.Key("efficiency_sweet_high").MustFloat64(defaults.EfficiencySweetHigh),
		EfficiencySweetBonus: section.Key("efficiency_sweet_bonus").
			MustFloat64(defaults.EfficiencySweetBonus),
		EfficiencyModerateLow: section.Key("efficiency_moderate_low").
			MustFloat64(defaults.EfficiencyModerateLow),
		EfficiencyModerateBonus: section.Key("efficiency_moderate_bonus").
			MustFloat64(defaults.EfficiencyModerateBonus),
		CapReceiptsAbove: section.Key("cap_receipts_above").MustFloat64(defaults.CapReceiptsAbove),
		CapTotalAbove:    section.Key("cap_total_above").MustFloat64(defaults.CapTotalAbove),
		CapBase:          section.Key("cap_base").MustFloat64(defaults.CapBase),
		CapSlope:         section.Key("cap_slope").MustFloat64(defaults.CapSlope),
		FloorAmount:      section.Key("floor_amount").MustFloat64(defaults.FloorAmount),
	}, nil
}

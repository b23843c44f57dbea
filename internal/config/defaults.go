package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pnl_tracker/internal/analytics"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

type ExchangeDefault struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Color       string `yaml:"color"`
}

type KPIDefault struct {
	Name         string  `yaml:"name"`
	TargetAmount float64 `yaml:"target_amount"`
	Color        string  `yaml:"color"`
}

// StartingBalanceDefault references its exchange by name since ids do not exist before seeding.
type StartingBalanceDefault struct {
	Exchange        string  `yaml:"exchange"`
	StartingBalance float64 `yaml:"starting_balance"`
	StartingDate    string  `yaml:"starting_date"`
}

type alertDefaults struct {
	Goals         []float64 `yaml:"goals"`
	GoalProximity float64   `yaml:"goal_proximity"`
	StreakWindow  int       `yaml:"streak_window"`
	MinStreak     int       `yaml:"min_streak"`
	LargeLoss     float64   `yaml:"large_loss"`
	Milestones    []float64 `yaml:"milestones"`
	MilestoneBand float64   `yaml:"milestone_band"`
	ROIMin        float64   `yaml:"roi_min"`
	ROIMax        float64   `yaml:"roi_max"`
}

// Defaults is the seed configuration applied to users that have none, plus alert thresholds.
type Defaults struct {
	Exchanges        []ExchangeDefault        `yaml:"exchanges"`
	KPIs             []KPIDefault             `yaml:"kpis"`
	StartingBalances []StartingBalanceDefault `yaml:"starting_balances"`
	Alerts           alertDefaults            `yaml:"alerts"`
}

// LoadDefaults reads path, or the embedded document when path is empty.
func LoadDefaults(path string) (*Defaults, error) {
	data := embeddedDefaults
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read defaults file: %w", err)
		}
		data = raw
	}
	return ParseDefaults(data)
}

func ParseDefaults(data []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}
	for i, ex := range d.Exchanges {
		if strings.TrimSpace(ex.Name) == "" {
			return nil, fmt.Errorf("defaults: exchange %d has no name", i)
		}
	}
	for _, k := range d.KPIs {
		if k.TargetAmount <= 0 {
			return nil, fmt.Errorf("defaults: kpi %q needs a positive target_amount", k.Name)
		}
	}
	return &d, nil
}

// AlertSettings overlays the configured thresholds on the built-in ones; zero values keep the
// built-in threshold.
func (d *Defaults) AlertSettings() analytics.AlertSettings {
	s := analytics.DefaultAlertSettings()
	a := d.Alerts
	if len(a.Goals) > 0 {
		s.Goals = a.Goals
	}
	if a.GoalProximity > 0 {
		s.GoalProximity = a.GoalProximity
	}
	if a.StreakWindow > 0 {
		s.StreakWindow = a.StreakWindow
	}
	if a.MinStreak > 0 {
		s.MinStreak = a.MinStreak
	}
	if a.LargeLoss > 0 {
		s.LargeLoss = a.LargeLoss
	}
	if len(a.Milestones) > 0 {
		s.Milestones = a.Milestones
	}
	if a.MilestoneBand > 0 {
		s.MilestoneBand = a.MilestoneBand
	}
	if a.ROIMin > 0 {
		s.ROIMin = a.ROIMin
	}
	if a.ROIMax > 0 {
		s.ROIMax = a.ROIMax
	}
	return s
}

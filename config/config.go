// Package config loads the analysis configuration: cut thresholds, the
// cascade stages, per-variable binning and the exposure normalization.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/decibelcooper/pionsel/hist"
	"github.com/decibelcooper/pionsel/kinematics"
	"github.com/decibelcooper/pionsel/selection"
	"github.com/decibelcooper/pionsel/vecmath"
)

// Stage is one row of the cut cascade.
type Stage struct {
	Name     string   `mapstructure:"name" yaml:"name"`
	Criteria []string `mapstructure:"criteria" yaml:"criteria"`
}

// Config is the full analysis configuration.
type Config struct {
	Thresholds selection.Thresholds    `mapstructure:"thresholds" yaml:"thresholds"`
	Stages     []Stage                 `mapstructure:"stages" yaml:"stages"`
	Binning    map[string]hist.Binning `mapstructure:"binning" yaml:"binning"`

	// Scale is the exposure normalization applied to simulation.
	Scale float64 `mapstructure:"scale" yaml:"scale"`
	// Beam is the average beam direction; it is normalized on load.
	Beam []float64 `mapstructure:"beam" yaml:"beam"`
	// Kalman selects the track-count-aware estimators.
	Kalman bool `mapstructure:"kalman" yaml:"kalman"`
	// Exhaustive evaluates every predicate instead of stopping at the
	// first failure.
	Exhaustive bool   `mapstructure:"exhaustive" yaml:"exhaustive"`
	Workers    int    `mapstructure:"workers" yaml:"workers"`
	Tree       string `mapstructure:"tree" yaml:"tree"`
}

// Default returns the nominal analysis configuration.
func Default() Config {
	return Config{
		Thresholds: selection.DefaultThresholds(),
		Stages: []Stage{
			{Name: "preselection"},
			{Name: "muonID", Criteria: []string{"muonID"}},
			{Name: "pionID", Criteria: []string{"muonID", "pionID"}},
			{Name: "recoT", Criteria: []string{"muonID", "pionID", "recoT"}},
			{Name: "kinematic", Criteria: []string{"muonID", "pionID", "recoT", "kinematic"}},
			{Name: "hitInfo", Criteria: []string{"muonID", "pionID", "recoT", "kinematic", "hitInfo"}},
		},
		Binning: map[string]hist.Binning{
			"recoT":        {N: 40, Low: 0, High: 0.4},
			"muonP":        {N: 40, Low: 0, High: 4},
			"pionP":        {N: 30, Low: 0, High: 1.5},
			"openingAngle": {N: 36, Low: 0, High: 180},
		},
		Scale:   1,
		Beam:    []float64{kinematics.DefaultBeam.X(), kinematics.DefaultBeam.Y(), kinematics.DefaultBeam.Z()},
		Workers: 1,
		Tree:    "events",
	}
}

// SetDefaults registers the scalar defaults on v so that environment
// variables can override them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("thresholds.muon_id", d.Thresholds.MuonID)
	v.SetDefault("thresholds.pion_id", d.Thresholds.PionID)
	v.SetDefault("thresholds.kinematic", d.Thresholds.Kinematic)
	v.SetDefault("thresholds.hit_info", d.Thresholds.HitInfo)
	v.SetDefault("thresholds.recot_min", d.Thresholds.RecoTMin)
	v.SetDefault("scale", d.Scale)
	v.SetDefault("kalman", d.Kalman)
	v.SetDefault("exhaustive", d.Exhaustive)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("tree", d.Tree)
}

// Load unmarshals the configuration held by v over Default and validates
// it. Stages, binning and beam given in v replace the defaults wholesale.
func Load(v *viper.Viper) (Config, error) {
	c := Default()
	if v.IsSet("stages") {
		c.Stages = nil
	}
	if v.IsSet("binning") {
		c.Binning = nil
	}
	if v.IsSet("beam") {
		c.Beam = nil
	}
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every section of c.
func (c Config) Validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("config: no stages")
	}
	seen := make(map[string]bool)
	for _, s := range c.Stages {
		if !validStageName(s.Name) {
			return fmt.Errorf("config: invalid stage name %q", s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("config: duplicate stage %q", s.Name)
		}
		seen[s.Name] = true
		if _, err := selection.ParseMask(s.Criteria); err != nil {
			return fmt.Errorf("config: stage %q: %w", s.Name, err)
		}
	}
	for name, b := range c.Binning {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("config: binning %q: %w", name, err)
		}
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %v", c.Scale)
	}
	if _, err := c.BeamDir(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// validStageName reports whether name can lead a histogram name and survive
// the "/" → "__" mapping of ROOT keys.
func validStageName(name string) bool {
	return name != "" &&
		!strings.Contains(name, "/") &&
		!strings.Contains(name, "__") &&
		!strings.HasSuffix(name, "_")
}

// BeamDir returns the normalized beam direction.
func (c Config) BeamDir() (vecmath.Dir, error) {
	if len(c.Beam) != 3 {
		return vecmath.Dir{}, fmt.Errorf("config: beam needs 3 components, got %d", len(c.Beam))
	}
	d, err := vecmath.Unit(c.Beam[0], c.Beam[1], c.Beam[2])
	if err != nil {
		return vecmath.Dir{}, fmt.Errorf("config: beam: %w", err)
	}
	return d, nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/solver"
)

const (
	DefaultDt       = 0.001
	DefaultDuration = 10.0
	DefaultBodies   = 3
	DefaultScale    = 1.0
	DefaultCapacity = 512
)

type Config struct {
	Preset   string         `yaml:"preset"`
	Solver   string         `yaml:"solver"`
	Dt       float64        `yaml:"dt"`
	Duration float64        `yaml:"duration"`
	Bodies   int            `yaml:"bodies"`
	Scale    float64        `yaml:"scale"`
	Capacity int            `yaml:"capacity"`
	Adaptive AdaptiveConfig `yaml:"adaptive"`
}

type AdaptiveConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	MinDt     float64 `yaml:"min_dt"`
	MaxDt     float64 `yaml:"max_dt"`
}

func DefaultConfig() *Config {
	a := solver.DefaultAdaptiveConfig()
	return &Config{
		Preset:   "ring",
		Solver:   string(solver.KindRK4),
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Bodies:   DefaultBodies,
		Scale:    DefaultScale,
		Capacity: DefaultCapacity,
		Adaptive: AdaptiveConfig{
			Tolerance: a.Tolerance,
			MinDt:     a.MinDt,
			MaxDt:     a.MaxDt,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SystemDef materializes the configured preset, applying the dt override
// when one is set.
func (c *Config) SystemDef() (body.SystemDef, error) {
	build, ok := Presets[c.Preset]
	if !ok {
		return body.SystemDef{}, fmt.Errorf("unknown preset %q", c.Preset)
	}
	def, err := build(c)
	if err != nil {
		return body.SystemDef{}, err
	}
	if c.Dt > 0 {
		def.Dt = c.Dt
	}
	return def, nil
}

// SolverKind validates and returns the configured solver variant.
func (c *Config) SolverKind() (solver.Kind, error) {
	kind := solver.Kind(c.Solver)
	for _, k := range solver.Kinds() {
		if k == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown solver %q", c.Solver)
}

// AdaptiveSolverConfig converts the yaml adaptive section, falling back to
// defaults for unset fields.
func (c *Config) AdaptiveSolverConfig() solver.AdaptiveConfig {
	cfg := solver.DefaultAdaptiveConfig()
	if c.Adaptive.Tolerance > 0 {
		cfg.Tolerance = c.Adaptive.Tolerance
	}
	if c.Adaptive.MinDt > 0 {
		cfg.MinDt = c.Adaptive.MinDt
	}
	if c.Adaptive.MaxDt > 0 {
		cfg.MaxDt = c.Adaptive.MaxDt
	}
	return cfg
}

package config

import (
	"github.com/skm-dev/gravstream/internal/body"
)

// Presets maps configuration names to their system definition factories.
// Parameterized presets read Bodies and Scale from the config.
var Presets = map[string]func(*Config) (body.SystemDef, error){
	"ring": func(c *Config) (body.SystemDef, error) {
		return body.StableRing(c.Bodies, c.Scale)
	},
	"figure-eight": func(*Config) (body.SystemDef, error) {
		return body.FigureEight(), nil
	},
	"binary": func(*Config) (body.SystemDef, error) {
		return body.BinaryPair(), nil
	},
	"lagrange": func(*Config) (body.SystemDef, error) {
		return body.LagrangeTriangle(), nil
	},
	"planetary": func(c *Config) (body.SystemDef, error) {
		return body.Planetary(c.Bodies)
	},
	"blackhole": func(c *Config) (body.SystemDef, error) {
		return body.BlackHoleSwarm(c.Bodies)
	},
}

// PresetNames lists the presets in a stable order for display.
func PresetNames() []string {
	return []string{"ring", "figure-eight", "binary", "lagrange", "planetary", "blackhole"}
}

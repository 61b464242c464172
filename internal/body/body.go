package body

import (
	"github.com/skm-dev/gravstream/internal/phase"
)

// Type classifies a body for presentation purposes. It has no effect on the
// dynamics beyond what mass already encodes.
type Type int

const (
	Solar Type = iota
	Planet
	Moon
	BlackHole
)

func (t Type) String() string {
	switch t {
	case Solar:
		return "solar"
	case Planet:
		return "planet"
	case Moon:
		return "moon"
	case BlackHole:
		return "blackhole"
	default:
		return "unknown"
	}
}

// Body is a live point mass. ID and Mass are fixed at creation; State is the
// only field the solver family mutates.
type Body struct {
	ID    int
	Type  Type
	Mass  float64
	State phase.State
}

// Def is the immutable blueprint for one body.
type Def struct {
	State phase.State
	Type  Type
	Mass  float64
}

// SystemDef is the immutable configuration of a whole simulation: an ordered
// body list, the gravitational constant, and the nominal timestep fixed-step
// solvers will use (adaptive solvers treat it as the initial trial).
type SystemDef struct {
	Bodies []Def
	G      float64
	Dt     float64
}

// ToBodies instantiates live bodies, assigning sequential IDs in definition
// order.
func (d SystemDef) ToBodies() []*Body {
	bodies := make([]*Body, len(d.Bodies))
	for i, def := range d.Bodies {
		bodies[i] = &Body{
			ID:    i,
			Type:  def.Type,
			Mass:  def.Mass,
			State: def.State,
		}
	}
	return bodies
}

package metrics

import (
	"math"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

// Metric accumulates a scalar observation over a run.
type Metric interface {
	Name() string
	OnStep(bodies []*body.Body, t float64)
	Value() float64
	Reset()
}

// EnergyDrift tracks the maximum relative deviation of total mechanical
// energy from its first observed value.
type EnergyDrift struct {
	force   *gravity.Evaluator
	initial float64
	max     float64
	samples int
	series  []float64
	scratch []phase.State
}

func NewEnergyDrift(force *gravity.Evaluator) *EnergyDrift {
	return &EnergyDrift{force: force}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) OnStep(bodies []*body.Body, t float64) {
	if len(e.scratch) != len(bodies) {
		e.scratch = make([]phase.State, len(bodies))
	}
	for i, b := range bodies {
		e.scratch[i] = b.State
	}
	energy := e.force.Energy(bodies, e.scratch)

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	drift := 0.0
	if e.initial != 0 {
		drift = math.Abs(energy-e.initial) / math.Abs(e.initial)
	}
	e.max = math.Max(e.max, drift)
	e.series = append(e.series, drift)
}

func (e *EnergyDrift) Value() float64 { return e.max }

// Series returns the per-step drift values, for plotting.
func (e *EnergyDrift) Series() []float64 { return e.series }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
	e.series = nil
}

package metrics

import (
	"math"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

// MomentumDrift tracks the maximum deviation of total linear momentum
// magnitude from its first observed value.
type MomentumDrift struct {
	force   *gravity.Evaluator
	initial float64
	max     float64
	samples int
	scratch []phase.State
}

func NewMomentumDrift(force *gravity.Evaluator) *MomentumDrift {
	return &MomentumDrift{force: force}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) OnStep(bodies []*body.Body, t float64) {
	if len(m.scratch) != len(bodies) {
		m.scratch = make([]phase.State, len(bodies))
	}
	for i, b := range bodies {
		m.scratch[i] = b.State
	}
	px, py := m.force.Momentum(bodies, m.scratch)
	mag := math.Hypot(px, py)

	if m.samples == 0 {
		m.initial = mag
	}
	m.samples++
	m.max = math.Max(m.max, math.Abs(mag-m.initial))
}

func (m *MomentumDrift) Value() float64 { return m.max }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.max = 0
	m.samples = 0
}

// Extent tracks how close the system has come to the crash boundary, as the
// largest position coordinate magnitude seen.
type Extent struct {
	max float64
}

func NewExtent() *Extent { return &Extent{} }

func (x *Extent) Name() string { return "extent" }

func (x *Extent) OnStep(bodies []*body.Body, t float64) {
	for _, b := range bodies {
		x.max = math.Max(x.max, math.Max(math.Abs(b.State.Px), math.Abs(b.State.Py)))
	}
}

func (x *Extent) Value() float64 { return x.max }

func (x *Extent) Reset() { x.max = 0 }

package metrics

import (
	"testing"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
	"github.com/skm-dev/gravstream/internal/sim"
	"github.com/skm-dev/gravstream/internal/solver"
)

func driven(t *testing.T, kind solver.Kind, steps int) (*sim.System, *EnergyDrift, *MomentumDrift, *Extent) {
	t.Helper()
	def := body.BinaryPair()
	def.Dt = 0.001

	system, err := sim.New(def, sim.WithSolver(kind))
	if err != nil {
		t.Fatal(err)
	}

	energy := NewEnergyDrift(system.Force())
	momentum := NewMomentumDrift(system.Force())
	extent := NewExtent()
	system.AddObserver(energy)
	system.AddObserver(momentum)
	system.AddObserver(extent)

	for i := 0; i < steps; i++ {
		if err := system.Step(); err != nil {
			t.Fatal(err)
		}
	}
	return system, energy, momentum, extent
}

func TestEnergyDriftLeapfrogSmall(t *testing.T) {
	_, energy, _, _ := driven(t, solver.KindLeapfrog, 5000)

	if energy.Value() > 1e-5 {
		t.Errorf("leapfrog energy drift %.3e too large", energy.Value())
	}
	if len(energy.Series()) != 5000 {
		t.Errorf("series has %d samples, want 5000", len(energy.Series()))
	}
}

func TestMomentumDriftNearZero(t *testing.T) {
	_, _, momentum, _ := driven(t, solver.KindRK4, 2000)

	if momentum.Value() > 1e-10 {
		t.Errorf("momentum drift %.3e, want ~0", momentum.Value())
	}
}

func TestExtentTracksMaxCoordinate(t *testing.T) {
	_, _, _, extent := driven(t, solver.KindLeapfrog, 100)

	// Binary pair orbits at radius 1.
	if extent.Value() < 0.9 || extent.Value() > 1.1 {
		t.Errorf("extent %.3f, want about 1", extent.Value())
	}
}

func TestReset(t *testing.T) {
	force := gravity.New(1)
	bodies := []*body.Body{{Mass: 1, State: phase.State{Px: 1, Vx: 1}}}

	metricsList := []Metric{NewEnergyDrift(force), NewMomentumDrift(force), NewExtent()}
	for _, m := range metricsList {
		m.OnStep(bodies, 0.1)
		m.Reset()
		if m.Value() != 0 {
			t.Errorf("%s: Value() = %v after Reset, want 0", m.Name(), m.Value())
		}
	}
}

package gravity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/phase"
)

func randomBodies(n int, seed int64) ([]*body.Body, []phase.State) {
	rng := rand.New(rand.NewSource(seed))
	bodies := make([]*body.Body, n)
	states := make([]phase.State, n)
	for i := range bodies {
		s := phase.State{
			Px: rng.Float64()*10 - 5,
			Py: rng.Float64()*10 - 5,
			Vx: rng.Float64()*2 - 1,
			Vy: rng.Float64()*2 - 1,
		}
		bodies[i] = &body.Body{ID: i, Mass: 0.5 + rng.Float64()*2, State: s}
		states[i] = s
	}
	return bodies, states
}

func TestForceSymmetry(t *testing.T) {
	for _, n := range []int{2, 3, 5, 12} {
		bodies, states := randomBodies(n, int64(n))
		dst := make([]phase.State, n)

		New(1.0).Derive(bodies, states, dst)

		var sx, sy float64
		for i, d := range dst {
			sx += bodies[i].Mass * d.Vx
			sy += bodies[i].Mass * d.Vy
		}
		if math.Abs(sx) > 1e-10 || math.Abs(sy) > 1e-10 {
			t.Errorf("n=%d: net force (%v, %v), want zero", n, sx, sy)
		}
	}
}

func TestVelocityPassthrough(t *testing.T) {
	bodies, states := randomBodies(4, 7)
	dst := make([]phase.State, 4)

	New(1.0).Derive(bodies, states, dst)

	for i, d := range dst {
		if d.Px != states[i].Vx || d.Py != states[i].Vy {
			t.Errorf("body %d: position derivative (%v, %v), want candidate velocity (%v, %v)",
				i, d.Px, d.Py, states[i].Vx, states[i].Vy)
		}
	}
}

func TestSingularityGuardSkipsCoincidentPair(t *testing.T) {
	bodies := []*body.Body{
		{ID: 0, Mass: 1},
		{ID: 1, Mass: 1},
	}
	states := []phase.State{
		{Px: 1, Py: 1},
		{Px: 1, Py: 1},
	}
	dst := make([]phase.State, 2)

	New(1.0).Derive(bodies, states, dst)

	for i, d := range dst {
		if !d.IsValid() {
			t.Fatalf("body %d derivative invalid: %+v", i, d)
		}
		if d.Vx != 0 || d.Vy != 0 {
			t.Errorf("body %d acceleration (%v, %v), want zero for skipped pair", i, d.Vx, d.Vy)
		}
	}
}

func TestDerivePureOverCandidateStates(t *testing.T) {
	bodies, _ := randomBodies(3, 42)
	live := make([]phase.State, 3)
	for i, b := range bodies {
		live[i] = b.State
	}

	// Candidate states differ from the live body states.
	candidate := []phase.State{
		{Px: 0, Py: 0, Vx: 1, Vy: 0},
		{Px: 2, Py: 0, Vx: 0, Vy: 1},
		{Px: 0, Py: 2, Vx: -1, Vy: 0},
	}
	saved := make([]phase.State, 3)
	copy(saved, candidate)
	dst := make([]phase.State, 3)

	New(1.0).Derive(bodies, candidate, dst)

	for i, b := range bodies {
		if b.State != live[i] {
			t.Errorf("body %d live state mutated", i)
		}
		if candidate[i] != saved[i] {
			t.Errorf("candidate state %d mutated", i)
		}
	}

	// Acceleration on body 0 comes from the candidate geometry: both other
	// bodies sit at distance 2 along the axes.
	wantAx := bodies[1].Mass / 4
	wantAy := bodies[2].Mass / 4
	if math.Abs(dst[0].Vx-wantAx) > 1e-12 || math.Abs(dst[0].Vy-wantAy) > 1e-12 {
		t.Errorf("body 0 acceleration (%v, %v), want (%v, %v)", dst[0].Vx, dst[0].Vy, wantAx, wantAy)
	}
}

func TestBinaryPairEnergy(t *testing.T) {
	def := body.BinaryPair()
	bodies := def.ToBodies()
	states := make([]phase.State, len(bodies))
	for i, b := range bodies {
		states[i] = b.State
	}

	// KE = 2 * 0.5*1*0.25, PE = -1/2.
	got := New(def.G).Energy(bodies, states)
	want := -0.25
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Energy = %v, want %v", got, want)
	}
}

func TestAngularMomentumOfRing(t *testing.T) {
	def, err := body.StableRing(5, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	bodies := def.ToBodies()
	states := make([]phase.State, len(bodies))
	for i, b := range bodies {
		states[i] = b.State
	}

	ev := New(def.G)

	// All bodies circulate the same way: L = n * m * R * v.
	want := 5.0 * def.Bodies[0].State.Speed()
	if got := ev.AngularMomentum(bodies, states); math.Abs(got-want) > 1e-10 {
		t.Errorf("AngularMomentum = %v, want %v", got, want)
	}

	px, py := ev.Momentum(bodies, states)
	if math.Abs(px) > 1e-10 || math.Abs(py) > 1e-10 {
		t.Errorf("net momentum (%v, %v), want zero", px, py)
	}
}

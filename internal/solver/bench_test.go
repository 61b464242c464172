package solver

import (
	"testing"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

func benchSystem(b *testing.B) ([]*body.Body, *gravity.Evaluator, []phase.State) {
	b.Helper()
	def, err := body.StableRing(5, 1.0)
	if err != nil {
		b.Fatal(err)
	}
	bodies := def.ToBodies()
	return bodies, gravity.New(def.G), make([]phase.State, len(bodies))
}

func benchSolver(b *testing.B, s Solver, bodies []*body.Body, y0 []phase.State) {
	b.Helper()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, bd := range bodies {
			y0[j] = bd.State
		}
		if _, err := s.Step(bodies, y0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEuler_Ring5(b *testing.B) {
	bodies, force, y0 := benchSystem(b)
	benchSolver(b, NewEuler(len(bodies), 0.001, force), bodies, y0)
}

func BenchmarkHeun_Ring5(b *testing.B) {
	bodies, force, y0 := benchSystem(b)
	benchSolver(b, NewHeun(len(bodies), 0.001, force), bodies, y0)
}

func BenchmarkRK4_Ring5(b *testing.B) {
	bodies, force, y0 := benchSystem(b)
	benchSolver(b, NewRK4(len(bodies), 0.001, force), bodies, y0)
}

func BenchmarkRK5_Ring5(b *testing.B) {
	bodies, force, y0 := benchSystem(b)
	benchSolver(b, NewRK5(len(bodies), 0.001, force), bodies, y0)
}

func BenchmarkLeapfrog_Ring5(b *testing.B) {
	bodies, force, y0 := benchSystem(b)
	benchSolver(b, NewLeapfrog(len(bodies), 0.001, force), bodies, y0)
}

func BenchmarkDormandPrince_Ring5(b *testing.B) {
	bodies, force, y0 := benchSystem(b)
	benchSolver(b, NewDormandPrince(len(bodies), 0.001, force, DefaultAdaptiveConfig()), bodies, y0)
}

package solver

import (
	"fmt"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

// Solver advances every body by one step. y0 holds the bodies' phase states
// at the start of the step (the caller's scratch copy); on success the new
// states are written back into the bodies and the simulated time actually
// consumed is returned. Fixed-step solvers always consume their construction
// dt; adaptive solvers may consume less than requested, and fail with a
// *phase.StepSizeError when no acceptable dt exists above their floor.
//
// A solver's scratch buffers are sized to the body count at construction and
// reused across calls, so a single instance must not be shared between
// systems of different sizes or used concurrently.
type Solver interface {
	Step(bodies []*body.Body, y0 []phase.State) (float64, error)
}

// Kind names a solver variant. The set is closed.
type Kind string

const (
	KindEuler         Kind = "euler"
	KindHeun          Kind = "heun"
	KindRK4           Kind = "rk4"
	KindRK5           Kind = "rk5"
	KindLeapfrog      Kind = "leapfrog"
	KindCashKarp      Kind = "cashkarp"
	KindDormandPrince Kind = "dopri5"
)

// Kinds lists every variant in presentation order.
func Kinds() []Kind {
	return []Kind{KindEuler, KindHeun, KindRK4, KindRK5, KindLeapfrog, KindCashKarp, KindDormandPrince}
}

// AdaptiveConfig bounds the step-size controller of the embedded pairs.
type AdaptiveConfig struct {
	Tolerance float64
	MinDt     float64
	MaxDt     float64
}

func DefaultAdaptiveConfig() AdaptiveConfig {
	return AdaptiveConfig{
		Tolerance: 1e-6,
		MinDt:     1e-9,
		MaxDt:     0.1,
	}
}

// New constructs a solver for n bodies stepping at dt. cfg only applies to
// the adaptive kinds.
func New(kind Kind, n int, dt float64, force *gravity.Evaluator, cfg AdaptiveConfig) (Solver, error) {
	switch kind {
	case KindEuler:
		return NewEuler(n, dt, force), nil
	case KindHeun:
		return NewHeun(n, dt, force), nil
	case KindRK4:
		return NewRK4(n, dt, force), nil
	case KindRK5:
		return NewRK5(n, dt, force), nil
	case KindLeapfrog:
		return NewLeapfrog(n, dt, force), nil
	case KindCashKarp:
		return NewCashKarp(n, dt, force, cfg), nil
	case KindDormandPrince:
		return NewDormandPrince(n, dt, force, cfg), nil
	default:
		return nil, fmt.Errorf("unknown solver kind %q", kind)
	}
}

func makeStates(stages, n int) [][]phase.State {
	k := make([][]phase.State, stages)
	for i := range k {
		k[i] = make([]phase.State, n)
	}
	return k
}

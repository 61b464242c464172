package solver

import (
	"math"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

// Step-size controller constants, shared by both embedded pairs.
const (
	safetyFactor    = 0.9
	maxGrowFactor   = 5.0
	minShrinkFactor = 0.2
)

// tableau holds the Butcher coefficients of an embedded Runge-Kutta pair:
// a feeds each stage from the earlier ones, b combines the stages into the
// high-order solution, and e = b - b* weights the stages into the embedded
// error estimate.
type tableau struct {
	a [][]float64
	b []float64
	e []float64
}

func (t tableau) stages() int { return len(t.b) }

// embedded is the shared adaptive solver. A trial step evaluates every
// stage, forms the error norm, and either commits the high-order update or
// shrinks dt and retries. Each retry strictly shrinks dt, so the loop
// terminates at the floor if it cannot converge.
type embedded struct {
	tab   tableau
	dt    float64
	cfg   AdaptiveConfig
	force *gravity.Evaluator

	k     [][]phase.State
	trial []phase.State
	yNew  []phase.State
}

func newEmbedded(tab tableau, n int, dt float64, force *gravity.Evaluator, cfg AdaptiveConfig) *embedded {
	return &embedded{
		tab:   tab,
		dt:    dt,
		cfg:   cfg,
		force: force,
		k:     makeStates(tab.stages(), n),
		trial: make([]phase.State, n),
		yNew:  make([]phase.State, n),
	}
}

func (s *embedded) Step(bodies []*body.Body, y0 []phase.State) (float64, error) {
	n := len(bodies)
	dt := s.dt
	stages := s.tab.stages()

	for {
		for st := 0; st < stages; st++ {
			row := s.tab.a[st]
			for i := 0; i < n; i++ {
				y := y0[i]
				for j := 0; j < st; j++ {
					if row[j] != 0 {
						y = y.Add(s.k[j][i].Scale(dt * row[j]))
					}
				}
				s.trial[i] = y
			}
			s.force.Derive(bodies, s.trial, s.k[st])
		}

		for i := 0; i < n; i++ {
			y := y0[i]
			for st := 0; st < stages; st++ {
				if s.tab.b[st] != 0 {
					y = y.Add(s.k[st][i].Scale(dt * s.tab.b[st]))
				}
			}
			s.yNew[i] = y
		}

		norm := s.errorNorm(dt, n)

		if norm <= 1.0 {
			for i, b := range bodies {
				b.State = s.yNew[i]
			}
			next := dt * math.Min(safetyFactor*math.Pow(norm, -0.2), maxGrowFactor)
			s.dt = math.Min(math.Max(next, s.cfg.MinDt), s.cfg.MaxDt)
			return dt, nil
		}

		shrunk := math.Max(dt*safetyFactor*math.Pow(norm, -0.25), dt*minShrinkFactor)
		if shrunk < s.cfg.MinDt {
			return 0, &phase.StepSizeError{
				Attempted: shrunk,
				Floor:     s.cfg.MinDt,
				Tolerance: s.cfg.Tolerance,
			}
		}
		dt = shrunk
	}
}

// errorNorm is the RMS of the per-component embedded error estimates over
// the tolerance, scaled by dt. A value of 1.0 means the step error sits
// exactly at tolerance.
func (s *embedded) errorNorm(dt float64, n int) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		var ex, ey, evx, evy float64
		for st, w := range s.tab.e {
			if w == 0 {
				continue
			}
			ex += w * s.k[st][i].Px
			ey += w * s.k[st][i].Py
			evx += w * s.k[st][i].Vx
			evy += w * s.k[st][i].Vy
		}
		tol := s.cfg.Tolerance
		sum += (ex/tol)*(ex/tol) + (ey/tol)*(ey/tol) + (evx/tol)*(evx/tol) + (evy/tol)*(evy/tol)
	}
	return dt * math.Sqrt(sum/float64(4*n))
}

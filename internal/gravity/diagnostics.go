package gravity

import (
	"math"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/phase"
)

// Energy returns total mechanical energy (kinetic plus pairwise potential)
// for the candidate states. Pairs inside the separation floor are skipped,
// matching the force law.
func (e *Evaluator) Energy(bodies []*body.Body, states []phase.State) float64 {
	ke := 0.0
	pe := 0.0

	for i, s := range states {
		ke += 0.5 * bodies[i].Mass * (s.Vx*s.Vx + s.Vy*s.Vy)

		for j := i + 1; j < len(states); j++ {
			dx := states[j].Px - s.Px
			dy := states[j].Py - s.Py
			r2 := dx*dx + dy*dy
			if r2 < minSeparationSq {
				continue
			}
			pe -= e.G * bodies[i].Mass * bodies[j].Mass / math.Sqrt(r2)
		}
	}
	return ke + pe
}

// Momentum returns total linear momentum.
func (e *Evaluator) Momentum(bodies []*body.Body, states []phase.State) (px, py float64) {
	for i, s := range states {
		px += bodies[i].Mass * s.Vx
		py += bodies[i].Mass * s.Vy
	}
	return px, py
}

// AngularMomentum returns total angular momentum about the origin.
func (e *Evaluator) AngularMomentum(bodies []*body.Body, states []phase.State) float64 {
	l := 0.0
	for i, s := range states {
		l += bodies[i].Mass * (s.Px*s.Vy - s.Py*s.Vx)
	}
	return l
}

package gravity

import (
	"math"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/phase"
)

// minSeparationSq is the squared-distance floor below which a pair
// contributes no force. Near-coincident bodies are skipped outright rather
// than force-clamped; changing this would alter simulated trajectories.
const minSeparationSq = 1e-12

// Evaluator computes phase derivatives under pairwise Newtonian gravity.
type Evaluator struct {
	G float64
}

func New(g float64) *Evaluator {
	return &Evaluator{G: g}
}

// Derive fills dst[i] with the derivative of states[i]: position derivative
// copied from the candidate velocity, velocity derivative the net
// acceleration from every other body. It reads masses from the bodies but
// positions and velocities only from states, so solvers can evaluate it at
// intermediate, non-committed stage states.
//
// Pairs are visited once (i < j) and the force applied with opposite signs
// to both bodies.
func (e *Evaluator) Derive(bodies []*body.Body, states []phase.State, dst []phase.State) {
	n := len(bodies)

	for i := 0; i < n; i++ {
		dst[i] = phase.State{Px: states[i].Vx, Py: states[i].Vy}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := states[j].Px - states[i].Px
			dy := states[j].Py - states[i].Py
			r2 := dx*dx + dy*dy
			if r2 < minSeparationSq {
				continue
			}
			r3 := r2 * math.Sqrt(r2)

			fx := e.G * dx / r3
			fy := e.G * dy / r3

			dst[i].Vx += bodies[j].Mass * fx
			dst[i].Vy += bodies[j].Mass * fy
			dst[j].Vx -= bodies[i].Mass * fx
			dst[j].Vy -= bodies[i].Mass * fy
		}
	}
}

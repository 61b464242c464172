package solver

import (
	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

// Leapfrog is the symplectic kick-drift-kick scheme: half-step velocity kick
// from the acceleration at the old positions, full-step position drift at
// the half-stepped velocity, then a second half kick from the acceleration
// at the new positions. The second force evaluation after the drift is what
// makes the scheme symplectic; it is exactly two evaluations per step.
type Leapfrog struct {
	dt      float64
	force   *gravity.Evaluator
	acc     []phase.State
	scratch []phase.State
}

func NewLeapfrog(n int, dt float64, force *gravity.Evaluator) *Leapfrog {
	return &Leapfrog{
		dt:      dt,
		force:   force,
		acc:     make([]phase.State, n),
		scratch: make([]phase.State, n),
	}
}

func (l *Leapfrog) Step(bodies []*body.Body, y0 []phase.State) (float64, error) {
	dt := l.dt
	halfDt := dt / 2

	l.force.Derive(bodies, y0, l.acc)

	// Kick, then drift at the half-stepped velocity.
	for i := range y0 {
		vx := y0[i].Vx + l.acc[i].Vx*halfDt
		vy := y0[i].Vy + l.acc[i].Vy*halfDt
		l.scratch[i] = phase.State{
			Px: y0[i].Px + vx*dt,
			Py: y0[i].Py + vy*dt,
			Vx: vx,
			Vy: vy,
		}
	}

	l.force.Derive(bodies, l.scratch, l.acc)

	// Second kick at the new positions.
	for i, b := range bodies {
		b.State = phase.State{
			Px: l.scratch[i].Px,
			Py: l.scratch[i].Py,
			Vx: l.scratch[i].Vx + l.acc[i].Vx*halfDt,
			Vy: l.scratch[i].Vy + l.acc[i].Vy*halfDt,
		}
	}
	return dt, nil
}

package solver

import (
	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

// Butcher's six-stage fifth-order coefficients. Stage two feeds the later
// stages but carries zero weight in the final combination.
var (
	rk5a21 = 1.0 / 4.0

	rk5a31 = 1.0 / 8.0
	rk5a32 = 1.0 / 8.0

	rk5a42 = -1.0 / 2.0
	rk5a43 = 1.0

	rk5a51 = 3.0 / 16.0
	rk5a54 = 9.0 / 16.0

	rk5a61 = -3.0 / 7.0
	rk5a62 = 2.0 / 7.0
	rk5a63 = 12.0 / 7.0
	rk5a64 = -12.0 / 7.0
	rk5a65 = 8.0 / 7.0

	rk5b1 = 7.0 / 90.0
	rk5b3 = 32.0 / 90.0
	rk5b4 = 12.0 / 90.0
	rk5b5 = 32.0 / 90.0
	rk5b6 = 7.0 / 90.0
)

// RK5 is a fixed-step six-stage fifth-order Runge-Kutta method.
type RK5 struct {
	dt      float64
	force   *gravity.Evaluator
	k       [][]phase.State
	scratch []phase.State
}

func NewRK5(n int, dt float64, force *gravity.Evaluator) *RK5 {
	return &RK5{
		dt:      dt,
		force:   force,
		k:       makeStates(6, n),
		scratch: make([]phase.State, n),
	}
}

func (r *RK5) Step(bodies []*body.Body, y0 []phase.State) (float64, error) {
	dt := r.dt
	k := r.k

	r.force.Derive(bodies, y0, k[0])

	for i := range y0 {
		r.scratch[i] = y0[i].Add(k[0][i].Scale(dt * rk5a21))
	}
	r.force.Derive(bodies, r.scratch, k[1])

	for i := range y0 {
		r.scratch[i] = y0[i].Add(k[0][i].Scale(dt * rk5a31)).Add(k[1][i].Scale(dt * rk5a32))
	}
	r.force.Derive(bodies, r.scratch, k[2])

	for i := range y0 {
		r.scratch[i] = y0[i].Add(k[1][i].Scale(dt * rk5a42)).Add(k[2][i].Scale(dt * rk5a43))
	}
	r.force.Derive(bodies, r.scratch, k[3])

	for i := range y0 {
		r.scratch[i] = y0[i].Add(k[0][i].Scale(dt * rk5a51)).Add(k[3][i].Scale(dt * rk5a54))
	}
	r.force.Derive(bodies, r.scratch, k[4])

	for i := range y0 {
		r.scratch[i] = y0[i].
			Add(k[0][i].Scale(dt * rk5a61)).
			Add(k[1][i].Scale(dt * rk5a62)).
			Add(k[2][i].Scale(dt * rk5a63)).
			Add(k[3][i].Scale(dt * rk5a64)).
			Add(k[4][i].Scale(dt * rk5a65))
	}
	r.force.Derive(bodies, r.scratch, k[5])

	for i, b := range bodies {
		sum := k[0][i].Scale(rk5b1).
			Add(k[2][i].Scale(rk5b3)).
			Add(k[3][i].Scale(rk5b4)).
			Add(k[4][i].Scale(rk5b5)).
			Add(k[5][i].Scale(rk5b6))
		b.State = y0[i].Add(sum.Scale(dt))
	}
	return dt, nil
}

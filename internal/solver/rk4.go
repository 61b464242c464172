package solver

import (
	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

// RK4 is the classic fixed-step fourth-order method with the 1:2:2:1 weight
// pattern over two midpoint stages and an endpoint stage.
type RK4 struct {
	dt             float64
	force          *gravity.Evaluator
	k1, k2, k3, k4 []phase.State
	scratch        []phase.State
}

func NewRK4(n int, dt float64, force *gravity.Evaluator) *RK4 {
	return &RK4{
		dt:      dt,
		force:   force,
		k1:      make([]phase.State, n),
		k2:      make([]phase.State, n),
		k3:      make([]phase.State, n),
		k4:      make([]phase.State, n),
		scratch: make([]phase.State, n),
	}
}

func (r *RK4) Step(bodies []*body.Body, y0 []phase.State) (float64, error) {
	dt := r.dt

	r.force.Derive(bodies, y0, r.k1)

	for i := range y0 {
		r.scratch[i] = y0[i].Add(r.k1[i].Scale(dt / 2))
	}
	r.force.Derive(bodies, r.scratch, r.k2)

	for i := range y0 {
		r.scratch[i] = y0[i].Add(r.k2[i].Scale(dt / 2))
	}
	r.force.Derive(bodies, r.scratch, r.k3)

	for i := range y0 {
		r.scratch[i] = y0[i].Add(r.k3[i].Scale(dt))
	}
	r.force.Derive(bodies, r.scratch, r.k4)

	dt6 := dt / 6
	for i, b := range bodies {
		sum := r.k1[i].Add(r.k2[i].Scale(2)).Add(r.k3[i].Scale(2)).Add(r.k4[i])
		b.State = y0[i].Add(sum.Scale(dt6))
	}
	return dt, nil
}

package solver

import (
	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
)

// Euler is the first-order explicit method: y1 = y0 + dt*f(y0).
type Euler struct {
	dt    float64
	force *gravity.Evaluator
	k1    []phase.State
}

func NewEuler(n int, dt float64, force *gravity.Evaluator) *Euler {
	return &Euler{
		dt:    dt,
		force: force,
		k1:    make([]phase.State, n),
	}
}

func (e *Euler) Step(bodies []*body.Body, y0 []phase.State) (float64, error) {
	e.force.Derive(bodies, y0, e.k1)
	for i, b := range bodies {
		b.State = y0[i].Add(e.k1[i].Scale(e.dt))
	}
	return e.dt, nil
}

// Heun is the two-stage second-order method: a full Euler predictor followed
// by a trapezoidal average of the derivatives at both endpoints.
type Heun struct {
	dt      float64
	force   *gravity.Evaluator
	k1, k2  []phase.State
	scratch []phase.State
}

func NewHeun(n int, dt float64, force *gravity.Evaluator) *Heun {
	return &Heun{
		dt:      dt,
		force:   force,
		k1:      make([]phase.State, n),
		k2:      make([]phase.State, n),
		scratch: make([]phase.State, n),
	}
}

func (h *Heun) Step(bodies []*body.Body, y0 []phase.State) (float64, error) {
	h.force.Derive(bodies, y0, h.k1)

	for i := range y0 {
		h.scratch[i] = y0[i].Add(h.k1[i].Scale(h.dt))
	}
	h.force.Derive(bodies, h.scratch, h.k2)

	halfDt := h.dt / 2
	for i, b := range bodies {
		b.State = y0[i].Add(h.k1[i].Add(h.k2[i]).Scale(halfDt))
	}
	return h.dt, nil
}

// Package phase defines the 4-scalar phase vector shared by the whole
// simulation core.
//
// A [State] holds a body's position and velocity. The same type carries
// derivatives between the force law and the solvers: a derivative's Px/Py
// fields hold dx/dt (velocity) and its Vx/Vy fields hold dv/dt
// (acceleration). Closure under Add, Sub and Scale is the only arithmetic
// the solver family needs to combine Runge-Kutta stages.
//
// The package also owns the error taxonomy for numerical failure:
// [StepSizeError] (wrapping [ErrStepUnderflow]) is the terminal result of an
// adaptive solver that cannot satisfy its tolerance above the dt floor.
package phase

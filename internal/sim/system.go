package sim

import (
	"fmt"
	"math"

	"github.com/skm-dev/gravstream/internal/body"
	"github.com/skm-dev/gravstream/internal/gravity"
	"github.com/skm-dev/gravstream/internal/phase"
	"github.com/skm-dev/gravstream/internal/solver"
)

// Boundary is the escape detector limit: a body whose position exceeds it on
// either axis marks the system crashed. It flags runaway trajectories, not a
// physical wall.
const Boundary = 50.0

// Observer is notified after every accepted step, on the stepping goroutine.
type Observer interface {
	OnStep(bodies []*body.Body, t float64)
}

// System owns the body array and exactly one solver for the lifetime of a
// run. All mutation happens on the goroutine driving Step; the only values
// that cross a concurrency boundary are immutable snapshots.
type System struct {
	bodies    []*body.Body
	solver    solver.Solver
	force     *gravity.Evaluator
	scratch   []phase.State
	elapsed   float64
	err       error
	observers []Observer
}

type options struct {
	kind     solver.Kind
	adaptive solver.AdaptiveConfig
}

type Option func(*options)

// WithSolver selects the solver variant. The default is RK4.
func WithSolver(kind solver.Kind) Option {
	return func(o *options) { o.kind = kind }
}

// WithAdaptive overrides the adaptive step-size bounds for the embedded
// pair variants.
func WithAdaptive(cfg solver.AdaptiveConfig) Option {
	return func(o *options) { o.adaptive = cfg }
}

// New builds a ready-to-run simulation from a system definition.
func New(def body.SystemDef, opts ...Option) (*System, error) {
	if len(def.Bodies) == 0 {
		return nil, fmt.Errorf("sim: system definition has no bodies")
	}
	if def.Dt <= 0 {
		return nil, fmt.Errorf("sim: dt must be positive, got %g", def.Dt)
	}
	for i, d := range def.Bodies {
		if d.Mass <= 0 {
			return nil, fmt.Errorf("sim: body %d mass must be positive, got %g", i, d.Mass)
		}
	}

	o := options{
		kind:     solver.KindRK4,
		adaptive: solver.DefaultAdaptiveConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	bodies := def.ToBodies()
	force := gravity.New(def.G)
	s, err := solver.New(o.kind, len(bodies), def.Dt, force, o.adaptive)
	if err != nil {
		return nil, err
	}

	return &System{
		bodies:  bodies,
		solver:  s,
		force:   force,
		scratch: make([]phase.State, len(bodies)),
	}, nil
}

func (s *System) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Step advances the simulation one tick, accumulating the simulated time the
// solver actually consumed. A solver failure is terminal: the error latches
// and every later call returns it.
func (s *System) Step() error {
	if s.err != nil {
		return s.err
	}

	for i, b := range s.bodies {
		s.scratch[i] = b.State
	}

	dt, err := s.solver.Step(s.bodies, s.scratch)
	if err != nil {
		s.err = err
		return err
	}
	s.elapsed += dt

	for _, o := range s.observers {
		o.OnStep(s.bodies, s.elapsed)
	}
	return nil
}

// Elapsed is the total simulated time: the sum of the dt values returned by
// every accepted step.
func (s *System) Elapsed() float64 { return s.elapsed }

// Err reports the terminal solver error, if any.
func (s *System) Err() error { return s.err }

// Bodies exposes the live body array. Callers on other goroutines must use
// Snapshot instead.
func (s *System) Bodies() []*body.Body { return s.bodies }

// Force exposes the bound force evaluator for diagnostics.
func (s *System) Force() *gravity.Evaluator { return s.force }

// Crashed reports whether any body has left the ±Boundary square on either
// axis. It is an observable, not an error; stepping past it stays legal.
func (s *System) Crashed() bool {
	for _, b := range s.bodies {
		if math.Abs(b.State.Px) > Boundary || math.Abs(b.State.Py) > Boundary {
			return true
		}
	}
	return false
}

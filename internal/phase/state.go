package phase

import "math"

// State is the phase vector of a single body: position and velocity in the
// plane. It doubles as a derivative vector, in which case Px/Py hold the
// position derivative (velocity) and Vx/Vy hold the velocity derivative
// (acceleration). Solvers combine states with Add/Sub/Scale only.
type State struct {
	Px, Py float64
	Vx, Vy float64
}

func (s State) Add(o State) State {
	return State{s.Px + o.Px, s.Py + o.Py, s.Vx + o.Vx, s.Vy + o.Vy}
}

func (s State) Sub(o State) State {
	return State{s.Px - o.Px, s.Py - o.Py, s.Vx - o.Vx, s.Vy - o.Vy}
}

func (s State) Scale(f float64) State {
	return State{s.Px * f, s.Py * f, s.Vx * f, s.Vy * f}
}

func (s State) IsValid() bool {
	for _, v := range [4]float64{s.Px, s.Py, s.Vx, s.Vy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Speed returns the magnitude of the velocity component.
func (s State) Speed() float64 {
	return math.Hypot(s.Vx, s.Vy)
}

package sim

import (
	"github.com/skm-dev/gravstream/internal/body"
)

// BodySnapshot is a render-friendly, single-precision projection of one body
// at an instant.
type BodySnapshot struct {
	ID   int
	X, Y float32
	Type body.Type
	Mass float32
}

// Snapshot is an immutable capture of the whole system: the elapsed time at
// capture and one BodySnapshot per body in ID order. It shares no mutable
// state with the live simulation, so consumers never observe mutation races.
type Snapshot struct {
	Timestamp float64
	Bodies    []BodySnapshot
}

// Snapshot projects the current body states. The returned value is
// independent of any later mutation.
func (s *System) Snapshot() Snapshot {
	bodies := make([]BodySnapshot, len(s.bodies))
	for i, b := range s.bodies {
		bodies[i] = BodySnapshot{
			ID:   b.ID,
			X:    float32(b.State.Px),
			Y:    float32(b.State.Py),
			Type: b.Type,
			Mass: float32(b.Mass),
		}
	}
	return Snapshot{Timestamp: s.elapsed, Bodies: bodies}
}

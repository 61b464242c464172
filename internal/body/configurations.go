package body

import (
	"fmt"
	"math"

	"github.com/skm-dev/gravstream/internal/phase"
)

// Canonical initial conditions. Each factory returns a SystemDef whose
// velocities are derived from closed-form or tabulated invariants, so the
// configuration starts on (or very near) a periodic orbit.

// StableRing places n unit masses evenly on a circle of radius scale, each
// with the tangential speed that balances the net pull of the other n-1
// bodies:
//
//	v = sqrt((G*M/(4R)) * sum_{k=1}^{n-1} 1/sin(pi*k/n))
//
// The force-sum factor comes from projecting every pairwise attraction onto
// the radial direction; chord length between bodies k apart is 2R*sin(pi*k/n).
func StableRing(n int, scale float64) (SystemDef, error) {
	if n <= 0 {
		return SystemDef{}, fmt.Errorf("stable ring: body count must be positive, got %d", n)
	}
	if scale <= 0 {
		return SystemDef{}, fmt.Errorf("stable ring: scale must be positive, got %g", scale)
	}

	const g, mass = 1.0, 1.0
	radius := scale

	sum := 0.0
	for k := 1; k < n; k++ {
		sum += 1.0 / math.Sin(math.Pi*float64(k)/float64(n))
	}
	v := math.Sqrt(g * mass / (4 * radius) * sum)

	defs := make([]Def, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		defs[i] = Def{
			Type: Planet,
			Mass: mass,
			State: phase.State{
				Px: radius * math.Cos(theta),
				Py: radius * math.Sin(theta),
				Vx: -v * math.Sin(theta),
				Vy: v * math.Cos(theta),
			},
		}
	}
	return SystemDef{Bodies: defs, G: g, Dt: 0.001}, nil
}

// FigureEight is the Chenciner-Montgomery three-body choreography: three unit
// masses chasing each other around a figure-eight curve. Initial conditions
// are the standard tabulated values; total linear momentum is exactly zero.
func FigureEight() SystemDef {
	const (
		px = 0.97000436
		py = -0.24308753
		vx = -0.93240737
		vy = -0.86473146
	)
	return SystemDef{
		G:  1.0,
		Dt: 0.001,
		Bodies: []Def{
			{Type: Solar, Mass: 1, State: phase.State{Px: px, Py: py, Vx: -vx / 2, Vy: -vy / 2}},
			{Type: Solar, Mass: 1, State: phase.State{Px: -px, Py: -py, Vx: -vx / 2, Vy: -vy / 2}},
			{Type: Solar, Mass: 1, State: phase.State{Px: 0, Py: 0, Vx: vx, Vy: vy}},
		},
	}
}

// BinaryPair is two equal masses on a circular mutual orbit. At separation 2r
// the centripetal balance gives v = sqrt(G*m/(4r)) for each body.
func BinaryPair() SystemDef {
	const g, mass, r = 1.0, 1.0, 1.0
	v := math.Sqrt(g * mass / (4 * r))
	return SystemDef{
		G:  g,
		Dt: 0.001,
		Bodies: []Def{
			{Type: Solar, Mass: mass, State: phase.State{Px: r, Py: 0, Vx: 0, Vy: v}},
			{Type: Solar, Mass: mass, State: phase.State{Px: -r, Py: 0, Vx: 0, Vy: -v}},
		},
	}
}

// LagrangeTriangle is three equal masses at the vertices of an equilateral
// triangle rotating about its centroid. With side L the circular speed is
// v = sqrt(G*m/L), tangential at circumradius L/sqrt(3).
func LagrangeTriangle() SystemDef {
	const g, mass, side = 1.0, 1.0, 1.0
	radius := side / math.Sqrt(3)
	v := math.Sqrt(g * mass / side)

	defs := make([]Def, 3)
	for i := 0; i < 3; i++ {
		theta := math.Pi/2 + 2*math.Pi*float64(i)/3
		defs[i] = Def{
			Type: Solar,
			Mass: mass,
			State: phase.State{
				Px: radius * math.Cos(theta),
				Py: radius * math.Sin(theta),
				Vx: -v * math.Sin(theta),
				Vy: v * math.Cos(theta),
			},
		}
	}
	return SystemDef{Bodies: defs, G: g, Dt: 0.001}
}

// Planetary is a heavy central body with n light planets on circular orbits
// at increasing radii, each given the Keplerian speed sqrt(G*M/r) for the
// central mass.
func Planetary(n int) (SystemDef, error) {
	if n <= 0 {
		return SystemDef{}, fmt.Errorf("planetary: planet count must be positive, got %d", n)
	}

	const g, central = 1.0, 100.0
	defs := make([]Def, 0, n+1)
	defs = append(defs, Def{Type: Solar, Mass: central})

	for i := 0; i < n; i++ {
		r := 2.0 + float64(i)*1.5
		theta := 2 * math.Pi * float64(i) / float64(n)
		v := math.Sqrt(g * central / r)
		defs = append(defs, Def{
			Type: Planet,
			Mass: 0.1,
			State: phase.State{
				Px: r * math.Cos(theta),
				Py: r * math.Sin(theta),
				Vx: -v * math.Sin(theta),
				Vy: v * math.Cos(theta),
			},
		})
	}
	return SystemDef{Bodies: defs, G: g, Dt: 0.002}, nil
}

// BlackHoleSwarm is a massive central body with n test masses on circular
// orbits spread between radii 3 and 10.
func BlackHoleSwarm(n int) (SystemDef, error) {
	if n <= 0 {
		return SystemDef{}, fmt.Errorf("black hole swarm: body count must be positive, got %d", n)
	}

	const g, central = 1.0, 500.0
	defs := make([]Def, 0, n+1)
	defs = append(defs, Def{Type: BlackHole, Mass: central})

	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n)
		r := 3.0 + 7.0*frac
		theta := 2 * math.Pi * frac * 3 // three loose spiral arms
		v := math.Sqrt(g * central / r)
		defs = append(defs, Def{
			Type: Moon,
			Mass: 0.01,
			State: phase.State{
				Px: r * math.Cos(theta),
				Py: r * math.Sin(theta),
				Vx: -v * math.Sin(theta),
				Vy: v * math.Cos(theta),
			},
		})
	}
	return SystemDef{Bodies: defs, G: g, Dt: 0.002}, nil
}

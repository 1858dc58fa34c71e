// Package tov implements the Tolman–Oppenheimer–Volkoff equations of
// relativistic hydrostatic equilibrium as an ode.System.
package tov

import (
	"math"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/ode"
)

// State vector layout for the TOV system.
const (
	// IdxMass is the enclosed gravitational mass m(r).
	IdxMass = 0
	// IdxPressure is the local pressure p(r).
	IdxPressure = 1
)

// Field is the TOV right-hand side in geometric units (G = c = 1, masses
// in solar masses). It is stateless apart from the shared read-only
// equation of state and safe for concurrent use.
type Field struct {
	eos *eos.Table
}

func NewField(t *eos.Table) *Field {
	return &Field{eos: t}
}

func (f *Field) StateDim() int { return 2 }

// Derive returns (dm/dr, dp/dr). At the coordinate singularity r = 0, or
// when the equation of state reports no physically valid energy density
// for the current pressure, it returns the zero vector, freezing the state
// for that step instead of propagating a singular value.
func (f *Field) Derive(r float64, x ode.State) ode.State {
	m := x[IdxMass]
	p := x[IdxPressure]

	ene, ok := f.eos.DensityOf(p)
	if !ok || r == 0 {
		return ode.State{0, 0}
	}

	dm := 4 * math.Pi * ene * r * r
	dp := -(ene + p) * (m + 4*math.Pi*r*r*r*p) / (r * (r - 2*m))

	return ode.State{dm, dp}
}

// SurfaceStop builds the surface-detection predicate: the star ends where
// pressure has dropped to or below the floor.
func SurfaceStop(pressureFloor float64) ode.StopFunc {
	return func(r float64, x ode.State) bool {
		return x[IdxPressure] <= pressureFloor
	}
}

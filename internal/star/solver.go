// Package star composes the equation of state, the TOV field and the
// fixed-step integrator into stellar-structure solutions: single models
// from one central density and mass-radius sequences from a sweep.
package star

import (
	"math"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/integrators"
	"github.com/san-kum/tovstar/internal/ode"
	"github.com/san-kum/tovstar/internal/tov"
)

const (
	DefaultRMin          = 1e-6
	DefaultRMax          = 20.0
	DefaultSamples       = 1000
	DefaultPressureFloor = 0.0
)

// Params are the radial-grid and surface-detection settings for one
// integration run.
type Params struct {
	RMin          float64
	RMax          float64
	Samples       int
	PressureFloor float64
}

func DefaultParams() Params {
	return Params{
		RMin:          DefaultRMin,
		RMax:          DefaultRMax,
		Samples:       DefaultSamples,
		PressureFloor: DefaultPressureFloor,
	}
}

// Model is one equilibrium configuration. Radius and Mass are in
// geometric units (masses in solar units by construction of the EoS
// scaling). SurfaceFound reports whether the pressure floor was actually
// reached; when false the radial grid ran out first and the values are
// the final grid point, to be treated as suspect.
type Model struct {
	CentralDensity float64
	Radius         float64
	Mass           float64
	SurfaceFound   bool
	Steps          int
}

// Solver integrates the TOV equations outward for one central density at
// a time. A Solver is cheap to build but not safe for concurrent use; its
// stepper carries scratch buffers.
type Solver struct {
	table  *eos.Table
	field  *tov.Field
	step   integrators.Stepper
	params Params
}

func NewSolver(table *eos.Table, step integrators.Stepper, params Params) *Solver {
	return &Solver{
		table:  table,
		field:  tov.NewField(table),
		step:   step,
		params: params,
	}
}

// Solve integrates one stellar model from the given central density.
// Initial conditions place a uniform-density core inside the innermost
// shell at RMin. Solve never fails: anomalous inputs degrade to a numeric
// result, and repeated calls with the same input are bit-identical.
func (s *Solver) Solve(rho0 float64) Model {
	p0 := s.table.PressureOf(rho0)
	m0 := 4.0 / 3.0 * math.Pi * rho0 * math.Pow(s.params.RMin, 3)

	grid := integrators.Grid{
		Start: s.params.RMin,
		End:   s.params.RMax,
		Steps: s.params.Samples,
	}

	res, err := integrators.Integrate(
		s.field,
		ode.State{tov.IdxMass: m0, tov.IdxPressure: p0},
		grid,
		s.step,
		tov.SurfaceStop(s.params.PressureFloor),
	)
	if err != nil {
		// Only malformed grids reach here; report a degenerate model in
		// line with the never-hard-fail policy of the core.
		return Model{CentralDensity: rho0}
	}

	return Model{
		CentralDensity: rho0,
		Radius:         res.T,
		Mass:           res.X[tov.IdxMass],
		SurfaceFound:   res.Reason == ode.StopTriggered,
		Steps:          res.Steps,
	}
}

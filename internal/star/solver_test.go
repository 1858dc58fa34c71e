package star

import (
	"math"
	"testing"

	"github.com/san-kum/tovstar/internal/eos"
	"github.com/san-kum/tovstar/internal/integrators"
)

func polytropeTable(t *testing.T) *eos.Table {
	t.Helper()
	tab, err := eos.Polytrope(100, 2.0, 400, 1e-5, 5e-3)
	if err != nil {
		t.Fatalf("polytrope failed: %v", err)
	}
	return tab
}

// The interior Schwarzschild solution gives a closed form for a
// constant-density star: central pressure
// p_c = rho (1 - s) / (3 s - 1) with s = sqrt(1 - 2 M / R) and
// M = (4/3) pi rho R^3. A nearly constant-density table must reproduce
// the chosen (R, M) from that p_c within the fixed-step truncation error.
func TestSolveMatchesConstantDensityClosedForm(t *testing.T) {
	rho := 1e-4
	radius := 10.0
	mass := 4.0 / 3.0 * math.Pi * rho * radius * radius * radius

	s := math.Sqrt(1 - 2*mass/radius)
	pc := rho * (1 - s) / (3*s - 1)

	// Two-point table: density pinned to rho within 0.1% across the whole
	// pressure range of the star, pressure linear from 0 to 2 p_c so that
	// the midpoint density rho maps exactly to p_c.
	delta := 1e-3
	tab, err := eos.New(
		[]float64{rho * (1 - delta), rho * (1 + delta)},
		[]float64{0, 2 * pc},
		1.0,
	)
	if err != nil {
		t.Fatalf("table failed: %v", err)
	}

	params := Params{RMin: 1e-6, RMax: 15.0, Samples: 3000, PressureFloor: 0}
	solver := NewSolver(tab, integrators.NewRK4(), params)

	m := solver.Solve(rho)

	if !m.SurfaceFound {
		t.Fatal("surface not found for constant-density star")
	}
	if relErr := math.Abs(m.Radius-radius) / radius; relErr > 0.01 {
		t.Errorf("radius off by %.3f%%: got %.5f, expected %.5f", relErr*100, m.Radius, radius)
	}
	if relErr := math.Abs(m.Mass-mass) / mass; relErr > 0.01 {
		t.Errorf("mass off by %.3f%%: got %.5f, expected %.5f", relErr*100, m.Mass, mass)
	}
}

func TestSolveTypicalNeutronStar(t *testing.T) {
	tab := polytropeTable(t)
	solver := NewSolver(tab, integrators.NewRK4(), DefaultParams())

	m := solver.Solve(1.3e-3)

	if !m.SurfaceFound {
		t.Fatal("surface not found")
	}
	if m.Radius < 4 || m.Radius > 14 {
		t.Errorf("radius outside plausible band: %f", m.Radius)
	}
	if m.Mass < 0.5 || m.Mass > 3.0 {
		t.Errorf("mass outside plausible band: %f", m.Mass)
	}
	if 2*m.Mass/m.Radius >= 8.0/9.0 {
		t.Errorf("model violates the Buchdahl bound: 2M/R=%f", 2*m.Mass/m.Radius)
	}
}

func TestSolveIdempotent(t *testing.T) {
	tab := polytropeTable(t)
	solver := NewSolver(tab, integrators.NewRK4(), DefaultParams())

	a := solver.Solve(1.3e-3)
	b := solver.Solve(1.3e-3)

	if a != b {
		t.Errorf("repeated solves differ: %+v vs %+v", a, b)
	}

	// A fresh solver over the same shared table must agree bit for bit.
	c := NewSolver(tab, integrators.NewRK4(), DefaultParams()).Solve(1.3e-3)
	if a != c {
		t.Errorf("fresh solver differs: %+v vs %+v", a, c)
	}
}

func TestSolveAtTableMinimum(t *testing.T) {
	tab := polytropeTable(t)
	solver := NewSolver(tab, integrators.NewRK4(), DefaultParams())

	min, _ := tab.DensityDomain()
	low := solver.Solve(min)
	mid := solver.Solve(1.3e-3)

	if !low.SurfaceFound {
		t.Fatal("surface not found for near-vacuum configuration")
	}
	if low.Mass >= mid.Mass {
		t.Errorf("near-vacuum mass %.6f should be far below %.6f", low.Mass, mid.Mass)
	}
	if low.Mass < 0 {
		t.Errorf("near-vacuum mass should be non-negative, got %g", low.Mass)
	}
}

func TestSolveAboveTableMaximum(t *testing.T) {
	tab := polytropeTable(t)
	solver := NewSolver(tab, integrators.NewRK4(), DefaultParams())

	_, max := tab.DensityDomain()
	m := solver.Solve(max * 2)

	// Extrapolated, suspect, but never an error.
	if math.IsNaN(m.Radius) || math.IsNaN(m.Mass) {
		t.Errorf("extrapolated solve produced NaN: %+v", m)
	}
}

func TestSolveGridRunsOut(t *testing.T) {
	tab := polytropeTable(t)

	// An outer bound well inside the star: the pressure floor is never
	// reached and the final grid point is returned, flagged as suspect.
	params := Params{RMin: 1e-6, RMax: 1.0, Samples: 200, PressureFloor: 0}
	solver := NewSolver(tab, integrators.NewRK4(), params)

	m := solver.Solve(1.3e-3)

	if m.SurfaceFound {
		t.Error("surface should not be found inside a truncated grid")
	}
	if m.Radius != params.RMax {
		t.Errorf("expected terminal radius %f, got %f", params.RMax, m.Radius)
	}
	if m.Steps != params.Samples {
		t.Errorf("expected all %d steps taken, got %d", params.Samples, m.Steps)
	}
}

func TestSolveEulerLessAccurate(t *testing.T) {
	tab := polytropeTable(t)
	params := DefaultParams()

	rk := NewSolver(tab, integrators.NewRK4(), params).Solve(1.3e-3)
	eu := NewSolver(tab, integrators.NewEuler(), params).Solve(1.3e-3)

	// Same star either way, just coarser with Euler.
	if math.Abs(rk.Mass-eu.Mass)/rk.Mass > 0.05 {
		t.Errorf("euler mass drifted too far from rk4: %.6f vs %.6f", eu.Mass, rk.Mass)
	}
}

package integrators

import "github.com/san-kum/tovstar/internal/ode"

// Stepper advances a state by one fixed step of the independent variable.
type Stepper interface {
	Step(sys ode.System, t float64, x ode.State, dt float64) ode.State
}

// Grid is a closed interval [Start, End] walked in Steps uniform steps,
// giving Steps+1 sample points.
type Grid struct {
	Start float64
	End   float64
	Steps int
}

func (g Grid) Spacing() float64 {
	return (g.End - g.Start) / float64(g.Steps)
}

func (g Grid) At(i int) float64 {
	return g.Start + float64(i)*g.Spacing()
}

func (g Grid) Valid() bool {
	return g.Steps > 0 && g.End > g.Start
}

// Result is the terminal point of an integration run.
type Result struct {
	T      float64
	X      ode.State
	Reason ode.Termination
	Steps  int
}

// Integrate walks the grid with the given stepper. The stop predicate, if
// non-nil, is evaluated on each tentative new state before it is committed;
// when it fires the run terminates and the previous sample point and
// previous state are returned, so the reported terminal point is the last
// one the predicate accepted. With a nil or never-firing predicate the run
// ends at the final grid point with every step taken.
func Integrate(sys ode.System, x0 ode.State, g Grid, step Stepper, stop ode.StopFunc) (Result, error) {
	if !g.Valid() {
		return Result{}, ode.ErrInvalidGrid
	}
	if len(x0) != sys.StateDim() {
		return Result{}, ode.ErrDimensionMismatch
	}

	dt := g.Spacing()
	x := x0.Clone()

	for i := 0; i < g.Steps; i++ {
		t := g.At(i)
		next := step.Step(sys, t, x, dt)

		if stop != nil && stop(t+dt, next) {
			return Result{T: t, X: x, Reason: ode.StopTriggered, Steps: i}, nil
		}

		x = next
	}

	return Result{T: g.End, X: x, Reason: ode.GridExhausted, Steps: g.Steps}, nil
}

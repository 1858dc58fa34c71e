package integrators

import "github.com/san-kum/tovstar/internal/ode"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ode.System, t float64, x ode.State, dt float64) ode.State {
	dx := sys.Derive(t, x)
	result := make(ode.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}

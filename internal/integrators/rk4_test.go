package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/tovstar/internal/ode"
)

type oscillator struct{}

func (o *oscillator) Derive(t float64, x ode.State) ode.State {
	return ode.State{x[1], -x[0]}
}

func (o *oscillator) StateDim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	sys := &oscillator{}
	integ := NewRK4()

	x := ode.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, float64(i)*dt, x, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4BeatsEuler(t *testing.T) {
	sys := &oscillator{}
	dt := 0.05
	steps := 200

	xr := ode.State{1.0, 0.0}
	xe := ode.State{1.0, 0.0}
	rk4 := NewRK4()
	euler := NewEuler()

	for i := 0; i < steps; i++ {
		tc := float64(i) * dt
		xr = rk4.Step(sys, tc, xr, dt)
		xe = euler.Step(sys, tc, xe, dt)
	}

	exact := math.Cos(float64(steps) * dt)
	rkErr := math.Abs(xr[0] - exact)
	euErr := math.Abs(xe[0] - exact)

	if rkErr >= euErr {
		t.Errorf("expected rk4 error (%.2e) below euler error (%.2e)", rkErr, euErr)
	}
}

func BenchmarkRK4Step(b *testing.B) {
	sys := &oscillator{}
	integ := NewRK4()
	x := ode.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, 0, x, 0.01)
	}
}

package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System is an ODE right-hand side dX/dr = f(r, X).
type System interface {
	Derive(r float64, x State) State
	StateDim() int
}

// StopFunc inspects a tentative new state and reports whether the
// integration should halt before committing it.
type StopFunc func(r float64, x State) bool

// Termination is the terminal condition of an integration run.
type Termination int

const (
	// GridExhausted means every step of the radial grid was taken.
	GridExhausted Termination = iota
	// StopTriggered means the stop predicate fired and the run was
	// rewound to the last accepted sample.
	StopTriggered
)

func (t Termination) String() string {
	switch t {
	case GridExhausted:
		return "grid exhausted"
	case StopTriggered:
		return "stop triggered"
	default:
		return "unknown"
	}
}

// Package ode provides core primitives for fixed-step integration of
// ordinary differential equations in a radial coordinate.
//
// The package defines the fundamental interfaces and types shared by the
// integrators and the stellar-structure solver:
//
//   - [State]: vector representing the dependent variables
//   - [System]: interface for ODE right-hand sides (dX/dr = f(r, X))
//   - [StopFunc]: early-termination predicate evaluated on tentative states
//   - [Termination]: explicit terminal condition of an integration run
//
// # Thread Safety
//
// State values are plain slices and are not safe for concurrent mutation.
// System implementations in this repository are stateless and may be shared
// across goroutines.
package ode

package ode

import "errors"

// Domain errors for integration setup.
var (
	// ErrInvalidGrid indicates a radial grid with a non-positive span or
	// step count.
	ErrInvalidGrid = errors.New("ode: invalid grid (need b > a and n > 0)")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch between state and system")
)

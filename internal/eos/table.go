package eos

import (
	"errors"
	"math"
	"sort"
)

// Construction errors.
var (
	// ErrLengthMismatch indicates density and pressure columns of
	// different lengths.
	ErrLengthMismatch = errors.New("eos: density and pressure columns differ in length")

	// ErrTooFewSamples indicates a table with fewer than two samples.
	ErrTooFewSamples = errors.New("eos: need at least two samples to interpolate")

	// ErrBadScale indicates a non-positive unit scale factor.
	ErrBadScale = errors.New("eos: scale factor must be positive")
)

// Table is an immutable tabulated equation of state. Both columns are
// expected to be non-decreasing with index; the table does not enforce
// this, but bidirectional lookup is only single-valued when it holds.
type Table struct {
	rho []float64
	p   []float64
}

// New builds a table from aligned density and pressure columns, scaling
// both uniformly by scale at load time.
func New(rho, p []float64, scale float64) (*Table, error) {
	if len(rho) != len(p) {
		return nil, ErrLengthMismatch
	}
	if len(rho) < 2 {
		return nil, ErrTooFewSamples
	}
	if scale <= 0 {
		return nil, ErrBadScale
	}

	t := &Table{
		rho: make([]float64, len(rho)),
		p:   make([]float64, len(p)),
	}
	for i := range rho {
		t.rho[i] = rho[i] * scale
		t.p[i] = p[i] * scale
	}
	return t, nil
}

func (t *Table) Len() int {
	return len(t.rho)
}

// DensityDomain returns the tabulated density range.
func (t *Table) DensityDomain() (min, max float64) {
	return t.rho[0], t.rho[len(t.rho)-1]
}

// PressureDomain returns the tabulated pressure range.
func (t *Table) PressureDomain() (min, max float64) {
	return t.p[0], t.p[len(t.p)-1]
}

// PressureOf maps a density to a pressure by linear interpolation,
// extrapolating on the nearest edge segment outside the domain.
func (t *Table) PressureOf(rho float64) float64 {
	return interp(t.rho, t.p, rho)
}

// DensityOf maps a pressure to an energy density. The second return is
// false when the pressure carries no physically valid energy density,
// which happens only for non-finite input or a non-finite interpolation
// result; ordinary out-of-domain pressures are extrapolated and reported
// as valid.
func (t *Table) DensityOf(p float64) (float64, bool) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	rho := interp(t.p, t.rho, p)
	if math.IsNaN(rho) || math.IsInf(rho, 0) {
		return 0, false
	}
	return rho, true
}

// interp evaluates the piecewise-linear function through (xs, ys) at x,
// using the edge segment's slope beyond either end. xs must be
// non-decreasing.
func interp(xs, ys []float64, x float64) float64 {
	n := len(xs)

	// Index of the segment [i, i+1] bracketing x.
	i := sort.SearchFloat64s(xs, x)
	switch {
	case i <= 0:
		i = 0
	case i >= n:
		i = n - 2
	default:
		i--
	}

	x0, x1 := xs[i], xs[i+1]
	y0, y1 := ys[i], ys[i+1]
	if x1 == x0 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

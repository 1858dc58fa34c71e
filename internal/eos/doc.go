// Package eos provides tabulated equations of state for dense stellar
// matter.
//
// A [Table] holds aligned density and pressure samples and offers
// bidirectional interpolated lookup:
//
//   - [Table.PressureOf]: density -> pressure
//   - [Table.DensityOf]: pressure -> density
//
// Both directions interpolate linearly between bracketing samples and
// extrapolate linearly on the edge segments outside the tabulated domain.
// Out-of-domain input is never an error; only a non-finite pressure (or a
// non-finite interpolation result) makes [Table.DensityOf] report that no
// physically valid energy density exists, which the stellar-structure
// solver treats as a halting signal.
//
// Tables are immutable after construction and safe to share across
// concurrent solver runs.
package eos

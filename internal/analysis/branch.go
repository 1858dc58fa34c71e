// Package analysis provides physical-plausibility checks on mass-radius
// sequences. The core solver never rejects a result; these helpers are the
// caller-side judgment it delegates.
package analysis

import "github.com/san-kum/tovstar/internal/star"

// Branches splits a mass-radius sequence at its maximum-mass turning
// point. Models up to and including the maximum form the stable branch;
// the remainder, at higher central density, the unstable one. This is the
// turning-point criterion only, not a full radial-mode analysis.
type Branches struct {
	Stable   *star.Sequence
	Unstable *star.Sequence
}

func SplitBranches(seq *star.Sequence) Branches {
	cut := seq.MaxIndex + 1
	return Branches{
		Stable: &star.Sequence{
			Densities: seq.Densities[:cut],
			Radii:     seq.Radii[:cut],
			Masses:    seq.Masses[:cut],
			MaxIndex:  seq.MaxIndex,
		},
		Unstable: &star.Sequence{
			Densities: seq.Densities[cut:],
			Radii:     seq.Radii[cut:],
			Masses:    seq.Masses[cut:],
		},
	}
}

// Compactness returns 2M/R, the Schwarzschild ratio of a model.
func Compactness(m star.Model) float64 {
	if m.Radius == 0 {
		return 0
	}
	return 2 * m.Mass / m.Radius
}

// BuchdahlLimit is the compactness bound 8/9 above which no static
// perfect-fluid star can exist.
const BuchdahlLimit = 8.0 / 9.0

// Suspect reports models a caller should not trust: the surface was never
// reached, the geometry is unphysical, or compactness breaches the
// Buchdahl bound.
func Suspect(m star.Model) bool {
	if !m.SurfaceFound {
		return true
	}
	if m.Radius <= 0 || m.Mass <= 0 {
		return true
	}
	return Compactness(m) >= BuchdahlLimit
}

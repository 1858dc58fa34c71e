package eos

import "math"

// Polytrope tabulates p = K·rho^Gamma on n log-spaced density samples in
// [rhoMin, rhoMax]. Units follow the caller; the presets shipped with the
// CLI use geometric units with masses in solar masses, where K ~ 100 and
// Gamma = 2 give a neutron-star-like table.
func Polytrope(k, gamma float64, n int, rhoMin, rhoMax float64) (*Table, error) {
	if n < 2 {
		return nil, ErrTooFewSamples
	}

	rho := make([]float64, n)
	p := make([]float64, n)

	logMin := math.Log(rhoMin)
	logMax := math.Log(rhoMax)
	step := (logMax - logMin) / float64(n-1)

	for i := 0; i < n; i++ {
		rho[i] = math.Exp(logMin + float64(i)*step)
		p[i] = k * math.Pow(rho[i], gamma)
	}

	return New(rho, p, 1.0)
}

package config

// Presets are named polytropic equations of state with sweep settings
// tuned to bracket each table's maximum-mass turning point.
var Presets = map[string]*Config{
	"soft": {
		EoS: EoSConfig{
			Scale: 1.0,
			Polytrope: &PolytropeConfig{
				K: 80, Gamma: 2.0, Samples: 500, RhoMin: 1e-5, RhoMax: 8e-3,
			},
		},
		Grid:       GridConfig{RMin: DefaultRMin, RMax: DefaultRMax, Samples: DefaultSamples},
		Sweep:      SweepConfig{DensitySamples: DefaultDensitySamples, Workers: 1},
		Integrator: "rk4",
		LengthKM:   DefaultLengthKM,
	},
	"stiff": {
		EoS: EoSConfig{
			Scale: 1.0,
			Polytrope: &PolytropeConfig{
				K: 150, Gamma: 2.5, Samples: 500, RhoMin: 1e-5, RhoMax: 6e-3,
			},
		},
		Grid:       GridConfig{RMin: DefaultRMin, RMax: DefaultRMax, Samples: DefaultSamples},
		Sweep:      SweepConfig{DensitySamples: DefaultDensitySamples, Workers: 1},
		Integrator: "rk4",
		LengthKM:   DefaultLengthKM,
	},
	"standard": {
		EoS: EoSConfig{
			Scale: 1.0,
			Polytrope: &PolytropeConfig{
				K: 100, Gamma: 2.0, Samples: 500, RhoMin: 1e-5, RhoMax: 1e-2,
			},
		},
		Grid:       GridConfig{RMin: DefaultRMin, RMax: DefaultRMax, Samples: DefaultSamples},
		Sweep:      SweepConfig{DensitySamples: DefaultDensitySamples, Workers: 1},
		Integrator: "rk4",
		LengthKM:   DefaultLengthKM,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tovstar/internal/eos"
)

const (
	DefaultRMin           = 1e-6
	DefaultRMax           = 20.0
	DefaultSamples        = 1000
	DefaultDensitySamples = 200
	DefaultPressureFloor  = 0.0

	// DefaultLengthKM converts the geometric length unit G*Msun/c^2 to
	// kilometers for reporting.
	DefaultLengthKM = 1.4766
)

type Config struct {
	EoS        EoSConfig   `yaml:"eos"`
	Grid       GridConfig  `yaml:"grid"`
	Sweep      SweepConfig `yaml:"sweep"`
	Integrator string      `yaml:"integrator"`

	// LengthKM converts internal radii to kilometers in reports.
	LengthKM float64 `yaml:"length_km"`
}

// EoSConfig selects the equation-of-state table: either a two-column CSV
// file or an inline polytrope. File wins when both are set.
type EoSConfig struct {
	File      string           `yaml:"file"`
	Scale     float64          `yaml:"scale"`
	Polytrope *PolytropeConfig `yaml:"polytrope"`
}

type PolytropeConfig struct {
	K       float64 `yaml:"k"`
	Gamma   float64 `yaml:"gamma"`
	Samples int     `yaml:"samples"`
	RhoMin  float64 `yaml:"rho_min"`
	RhoMax  float64 `yaml:"rho_max"`
}

type GridConfig struct {
	RMin          float64 `yaml:"rmin"`
	RMax          float64 `yaml:"rmax"`
	Samples       int     `yaml:"samples"`
	PressureFloor float64 `yaml:"pressure_floor"`
}

type SweepConfig struct {
	DensitySamples int `yaml:"density_samples"`
	Workers        int `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		EoS: EoSConfig{
			Scale: 1.0,
			Polytrope: &PolytropeConfig{
				K:       100,
				Gamma:   2.0,
				Samples: 500,
				RhoMin:  1e-5,
				RhoMax:  5e-3,
			},
		},
		Grid: GridConfig{
			RMin:          DefaultRMin,
			RMax:          DefaultRMax,
			Samples:       DefaultSamples,
			PressureFloor: DefaultPressureFloor,
		},
		Sweep: SweepConfig{
			DensitySamples: DefaultDensitySamples,
			Workers:        1,
		},
		Integrator: "rk4",
		LengthKM:   DefaultLengthKM,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildTable realizes the configured equation of state.
func (c *Config) BuildTable() (*eos.Table, error) {
	scale := c.EoS.Scale
	if scale == 0 {
		scale = 1.0
	}

	if c.EoS.File != "" {
		return eos.LoadCSV(c.EoS.File, scale)
	}

	p := c.EoS.Polytrope
	if p == nil {
		return nil, fmt.Errorf("config: no eos table configured")
	}
	return eos.Polytrope(p.K, p.Gamma, p.Samples, p.RhoMin, p.RhoMax)
}

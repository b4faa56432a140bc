package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skorva/relcalc/internal/decimal"
)

const (
	DefaultDigits     = 50
	DefaultRounding   = "half_even"
	DefaultAccelG     = 1.0
	DefaultDistanceLY = 4.2465
	DefaultTauYears   = 1.0
	DefaultVelocityC  = 0.5
	DefaultMassKG     = 1.0
	DefaultFrequency  = 540e12
)

type Config struct {
	Digits   int            `yaml:"digits"`
	Rounding string         `yaml:"rounding"`
	Journey  JourneyConfig  `yaml:"journey"`
	Particle ParticleConfig `yaml:"particle"`
}

// JourneyConfig holds the inputs for trajectory calculations in the units a
// person plans with; the CLI converts them to SI base units at the engine's
// precision.
type JourneyConfig struct {
	AccelG     float64 `yaml:"accel_g"`     // proper acceleration, multiples of g
	DistanceLY float64 `yaml:"distance_ly"` // coordinate distance, light-years
	TauYears   float64 `yaml:"tau_years"`   // proper time, Julian years
}

type ParticleConfig struct {
	VelocityC float64 `yaml:"velocity_c"` // velocity, fraction of c
	MassKG    float64 `yaml:"mass_kg"`    // rest mass, kilograms
	Frequency float64 `yaml:"frequency"`  // emitted frequency, hertz
}

func DefaultConfig() *Config {
	return &Config{
		Digits:   DefaultDigits,
		Rounding: DefaultRounding,
		Journey: JourneyConfig{
			AccelG:     DefaultAccelG,
			DistanceLY: DefaultDistanceLY,
			TauYears:   DefaultTauYears,
		},
		Particle: ParticleConfig{
			VelocityC: DefaultVelocityC,
			MassKG:    DefaultMassKG,
			Frequency: DefaultFrequency,
		},
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

var roundings = map[string]decimal.Rounding{
	"half_even": decimal.RoundHalfEven,
	"half_up":   decimal.RoundHalfUp,
	"down":      decimal.RoundDown,
	"up":        decimal.RoundUp,
	"floor":     decimal.RoundFloor,
	"ceiling":   decimal.RoundCeiling,
}

// Context builds the precision context the config describes.
func (c *Config) Context() (*decimal.Context, error) {
	r, ok := roundings[c.Rounding]
	if !ok {
		return nil, fmt.Errorf("config: unknown rounding %q", c.Rounding)
	}
	return decimal.New(c.Digits, decimal.WithRounding(r))
}

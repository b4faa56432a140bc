package config

// Presets are ready-made journeys for the CLI, grouped by destination.
var Presets = map[string]*Config{
	"neptune": {
		Digits: 50, Rounding: "half_even",
		Journey:  JourneyConfig{AccelG: 1.0, DistanceLY: 0.000486, TauYears: 0.05},
		Particle: ParticleConfig{VelocityC: DefaultVelocityC, MassKG: DefaultMassKG, Frequency: DefaultFrequency},
	},
	"proxima": {
		Digits: 50, Rounding: "half_even",
		Journey:  JourneyConfig{AccelG: 1.0, DistanceLY: 4.2465, TauYears: 1.0},
		Particle: ParticleConfig{VelocityC: DefaultVelocityC, MassKG: DefaultMassKG, Frequency: DefaultFrequency},
	},
	"galactic-core": {
		Digits: 100, Rounding: "half_even",
		Journey:  JourneyConfig{AccelG: 1.0, DistanceLY: 26670, TauYears: 10.0},
		Particle: ParticleConfig{VelocityC: DefaultVelocityC, MassKG: DefaultMassKG, Frequency: DefaultFrequency},
	},
	"andromeda": {
		Digits: 200, Rounding: "half_even",
		Journey:  JourneyConfig{AccelG: 1.0, DistanceLY: 2537000, TauYears: 15.0},
		Particle: ParticleConfig{VelocityC: DefaultVelocityC, MassKG: DefaultMassKG, Frequency: DefaultFrequency},
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

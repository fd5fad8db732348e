package config

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"heavy-door": {
		Dt: DefaultDt, Duration: DefaultDuration,
		Params: ParamsConfig{
			DoorMass: 80.0, DoorWidth: 1.2, SlidingMass: 8.0,
			InitialRadius: 0.1, FinalRadius: 1.1, SlideDuration: 1.2,
			InitialAngularVelocity: 2.0,
		},
	},
	"light-mass": {
		Dt: DefaultDt, Duration: DefaultDuration,
		Params: ParamsConfig{
			DoorMass: 30.0, DoorWidth: 1.0, SlidingMass: 1.0,
			InitialRadius: 0.1, FinalRadius: 0.9, SlideDuration: 1.2,
			InitialAngularVelocity: 2.0,
		},
	},
	"slow-slide": {
		Dt: DefaultDt, Duration: 20.0,
		Params: ParamsConfig{
			DoorMass: 30.0, DoorWidth: 1.0, SlidingMass: 12.0,
			InitialRadius: 0.05, FinalRadius: 0.95, SlideDuration: 5.0,
			InitialAngularVelocity: 0.8,
		},
	},
	"fast-spin": {
		Dt: DefaultDt, Duration: 5.0,
		Params: ParamsConfig{
			DoorMass: 30.0, DoorWidth: 1.0, SlidingMass: 8.0,
			InitialRadius: 0.1, FinalRadius: 0.9, SlideDuration: 0.6,
			InitialAngularVelocity: 5.0,
		},
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

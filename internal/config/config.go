package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/akl-leul/momentumsimu/internal/door"
)

const (
	DefaultDt            = 0.016
	DefaultDuration      = 10.0
	DefaultDoorMass      = 30.0
	DefaultDoorWidth     = 1.0
	DefaultSlidingMass   = 8.0
	DefaultInitialRadius = 0.1
	DefaultFinalRadius   = 0.9
	DefaultSlideDuration = 1.2
	DefaultOmega         = 2.0
)

type Config struct {
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Params   ParamsConfig `yaml:"params"`
}

type ParamsConfig struct {
	DoorMass               float64 `yaml:"door_mass"`
	DoorWidth              float64 `yaml:"door_width"`
	SlidingMass            float64 `yaml:"sliding_mass"`
	InitialRadius          float64 `yaml:"initial_radius"`
	FinalRadius            float64 `yaml:"final_radius"`
	SlideDuration          float64 `yaml:"slide_duration"`
	InitialAngularVelocity float64 `yaml:"initial_angular_velocity"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Params: ParamsConfig{
			DoorMass:               DefaultDoorMass,
			DoorWidth:              DefaultDoorWidth,
			SlidingMass:            DefaultSlidingMass,
			InitialRadius:          DefaultInitialRadius,
			FinalRadius:            DefaultFinalRadius,
			SlideDuration:          DefaultSlideDuration,
			InitialAngularVelocity: DefaultOmega,
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

// DoorParams converts the file representation into the core's
// parameter struct. Range validation is the caller's job; the core
// takes whatever it is given.
func (c *Config) DoorParams() door.Params {
	return door.Params{
		DoorMass:               c.Params.DoorMass,
		DoorWidth:              c.Params.DoorWidth,
		SlidingMass:            c.Params.SlidingMass,
		InitialRadius:          c.Params.InitialRadius,
		FinalRadius:            c.Params.FinalRadius,
		SlideDuration:          c.Params.SlideDuration,
		InitialAngularVelocity: c.Params.InitialAngularVelocity,
	}
}

// Package config holds file-backed launch configuration, named launch
// presets, and the tolerant float parsing used by the input form.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/trajlab/internal/phys"
)

const (
	DefaultAngle  = 45.0
	DefaultSpeed  = 25.0
	DefaultMass   = 1.0
	DefaultHeight = 0.0
	DefaultFPS    = 60
)

type Config struct {
	Launch  LaunchConfig  `yaml:"launch"`
	Physics PhysicsConfig `yaml:"physics"`
	FPS     int           `yaml:"fps"`
}

// LaunchConfig is the set of input values a launch snapshot is taken
// from.
type LaunchConfig struct {
	AngleDeg      float64 `yaml:"angle_deg"`
	Speed         float64 `yaml:"speed"`
	Mass          float64 `yaml:"mass"`
	Height        float64 `yaml:"height"`
	AirResistance bool    `yaml:"air_resistance"`
}

type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`
	AirDensity float64 `yaml:"air_density"`
	DragCoeff  float64 `yaml:"drag_coeff"`
	Dt         float64 `yaml:"dt"`
}

func DefaultConfig() *Config {
	return &Config{
		Launch: LaunchConfig{
			AngleDeg:      DefaultAngle,
			Speed:         DefaultSpeed,
			Mass:          DefaultMass,
			Height:        DefaultHeight,
			AirResistance: true,
		},
		Physics: PhysicsConfig{
			Gravity:    phys.DefaultGravity,
			AirDensity: phys.DefaultAirDensity,
			DragCoeff:  phys.DefaultDragCoeff,
			Dt:         phys.DefaultDt,
		},
		FPS: DefaultFPS,
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

// PhysConfig converts the file-level physics section into the immutable
// constants struct the model consumes.
func (c *Config) PhysConfig() phys.Config {
	return phys.Config{
		Gravity:    c.Physics.Gravity,
		AirDensity: c.Physics.AirDensity,
		DragCoeff:  c.Physics.DragCoeff,
		Dt:         c.Physics.Dt,
	}
}

// Params converts the launch section into model parameters.
func (l LaunchConfig) Params() phys.Params {
	return phys.Params{
		AngleDeg:      l.AngleDeg,
		Speed:         l.Speed,
		Mass:          l.Mass,
		Height:        l.Height,
		AirResistance: l.AirResistance,
	}
}

// ParseFloatOr parses s as a float, returning def when the text is
// malformed. Input fields deliberately absorb bad text this way
// instead of surfacing validation errors.
func ParseFloatOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

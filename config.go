package glowfx

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunables of a fireworks show. It is passed by value to
// New and never mutated by the engine afterwards.
type Config struct {
	// Gravity is the constant downward drift added to every particle each tick.
	Gravity float64 `yaml:"gravity"`
	// Friction multiplies particle speed every tick (air resistance).
	Friction float64 `yaml:"friction"`
	// Wind is the constant horizontal drift added to every particle each tick.
	Wind float64 `yaml:"wind"`
	// ParticlesPerExplosion is the particle count of a regular shell.
	ParticlesPerExplosion int `yaml:"particlesPerExplosion"`
	// RocketSpawnRate is the chance per tick that a rocket is launched.
	RocketSpawnRate float64 `yaml:"rocketSpawnRate"`
	// BaseHue is the hue in degrees the show starts cycling from.
	BaseHue float64 `yaml:"baseHue"`

	// HueStep is added to the base hue every tick.
	HueStep float64 `yaml:"hueStep"`
	// RocketSpeed is the launch speed of a rocket in pixels per tick.
	RocketSpeed float64 `yaml:"rocketSpeed"`
	// RocketAcceleration multiplies rocket speed every tick.
	RocketAcceleration float64 `yaml:"rocketAcceleration"`
	// MassiveChance is the chance that a shell carries twice the particles.
	MassiveChance float64 `yaml:"massiveChance"`
	// MultiLaunchChance is the chance that a launch is joined by two flanking rockets.
	MultiLaunchChance float64 `yaml:"multiLaunchChance"`
	// FadeAlpha is how much of the previous frame is erased each tick.
	FadeAlpha float64 `yaml:"fadeAlpha"`
	// LineWidth is the stroke width of rocket and particle trails.
	LineWidth float64 `yaml:"lineWidth"`
	// GlowRadius is the halo size drawn around every stroke. Zero disables it.
	GlowRadius float64 `yaml:"glowRadius"`
}

// DefaultConfig returns the stock show settings.
func DefaultConfig() Config {
	return Config{
		Gravity:               0.08,
		Friction:              0.96,
		Wind:                  0,
		ParticlesPerExplosion: 60,
		RocketSpawnRate:       0.02,
		BaseHue:               120,

		HueStep:            0.5,
		RocketSpeed:        2,
		RocketAcceleration: 1.05,
		MassiveChance:      0.2,
		MultiLaunchChance:  0.1,
		FadeAlpha:          0.2,
		LineWidth:          2,
		GlowRadius:         10,
	}
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	if c.Friction <= 0 || c.Friction > 1 {
		return fmt.Errorf("%w: friction %.3f outside (0, 1]", ErrInvalidConfig, c.Friction)
	}
	if c.ParticlesPerExplosion <= 0 {
		return fmt.Errorf("%w: particlesPerExplosion %d must be positive", ErrInvalidConfig, c.ParticlesPerExplosion)
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"rocketSpawnRate", c.RocketSpawnRate},
		{"massiveChance", c.MassiveChance},
		{"multiLaunchChance", c.MultiLaunchChance},
	} {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%w: %s %.3f outside [0, 1]", ErrInvalidConfig, p.name, p.v)
		}
	}
	if c.RocketSpeed <= 0 {
		return fmt.Errorf("%w: rocketSpeed %.3f must be positive", ErrInvalidConfig, c.RocketSpeed)
	}
	if c.RocketAcceleration < 1 {
		return fmt.Errorf("%w: rocketAcceleration %.3f below 1", ErrInvalidConfig, c.RocketAcceleration)
	}
	if c.FadeAlpha <= 0 || c.FadeAlpha > 1 {
		return fmt.Errorf("%w: fadeAlpha %.3f outside (0, 1]", ErrInvalidConfig, c.FadeAlpha)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("%w: lineWidth %.3f must be positive", ErrInvalidConfig, c.LineWidth)
	}
	if c.GlowRadius < 0 {
		return fmt.Errorf("%w: glowRadius %.3f must not be negative", ErrInvalidConfig, c.GlowRadius)
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Keys missing from data keep their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML show config from path. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

package sand

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"falling-sand/internal/core"

	"gopkg.in/yaml.v3"
)

// Params holds tunable rule parameters.
type Params struct {
	FireDecay float64 `yaml:"fire_decay"`
}

// BrushConfig controls the default stroke shape used by Engine.Paint.
type BrushConfig struct {
	Radius      int     `yaml:"radius"`
	Probability float64 `yaml:"probability"`
}

// Config controls the sand engine.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Scene    string `yaml:"scene"`
	Material string `yaml:"material"`

	Brush  BrushConfig `yaml:"brush"`
	Params Params      `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    200,
		Height:   200,
		Seed:     1337,
		Scene:    "empty",
		Material: Sand.String(),
		Brush: BrushConfig{
			Radius:      2,
			Probability: 0.5,
		},
		Params: Params{
			FireDecay: 0.1,
		},
	}
}

// Validate reports every problem with c, joined and wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	if err := core.CheckSize(c.Width, c.Height); err != nil {
		errs = append(errs, fmt.Errorf("grid: %w", err))
	}
	if c.Brush.Radius < 0 {
		errs = append(errs, fmt.Errorf("brush radius %d: %w", c.Brush.Radius, ErrInvalidBrush))
	}
	if !inUnit(c.Brush.Probability) {
		errs = append(errs, fmt.Errorf("brush probability %v outside [0,1]", c.Brush.Probability))
	}
	if !inUnit(c.Params.FireDecay) {
		errs = append(errs, fmt.Errorf("fire decay %v outside [0,1]", c.Params.FireDecay))
	}
	if _, err := ParseMaterial(c.Material); err != nil {
		errs = append(errs, err)
	}
	if _, ok := scenes[c.Scene]; !ok {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownScene, c.Scene))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, cfg.Validate()
}

// SaveConfig writes cfg as YAML.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values are ignored and keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Override(cfg)
	return c
}

// Override applies flag-style key/value pairs on top of c. Unknown keys and
// unparsable values are ignored.
func (c *Config) Override(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scene"]; ok && v != "" {
		c.Scene = v
	}
	if v, ok := cfg["material"]; ok && v != "" {
		c.Material = v
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Brush.Radius = parsed
		}
	}
	if v, ok := cfg["brush_probability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && inUnit(parsed) {
			c.Brush.Probability = parsed
		}
	}
	if v, ok := cfg["fire_decay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && inUnit(parsed) {
			c.Params.FireDecay = parsed
		}
	}
}

// Package config loads the optional YAML configuration file controlling
// animation and playback settings.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"globetrot/internal/anim"
)

// VehicleStyle overrides or extends the built-in vehicle style table.
type VehicleStyle struct {
	Color string `yaml:"color" validate:"required,hexcolor"`
	Icon  string `yaml:"icon"`
}

// AnimationConfig controls frame generation.
type AnimationConfig struct {
	TotalFrames  int   `yaml:"totalFrames" validate:"gt=0"`
	PointsPerLeg int   `yaml:"pointsPerLeg" validate:"gte=2"`
	Seed         int64 `yaml:"seed"`
}

// PlayerConfig controls playback in the terminal player.
type PlayerConfig struct {
	FPS int `yaml:"fps" validate:"gt=0,lte=60"`
}

// Config is the root configuration structure.
type Config struct {
	Animation AnimationConfig         `yaml:"animation"`
	Player    PlayerConfig            `yaml:"player"`
	Vehicles  map[string]VehicleStyle `yaml:"vehicles" validate:"omitempty,dive"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			TotalFrames:  anim.DefaultTotalFrames,
			PointsPerLeg: anim.DefaultPointsPerLeg,
			Seed:         1,
		},
		Player: PlayerConfig{FPS: 25},
	}
}

// Load reads and validates a YAML config file. Absent keys keep their
// default values; an empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Styles merges the configured vehicle styles over the built-in table. An
// override without an icon keeps the built-in icon for that vehicle.
func (c Config) Styles() map[string]anim.Style {
	styles := anim.DefaultStyles()
	for k, v := range c.Vehicles {
		s := anim.Style{Color: v.Color, Icon: v.Icon}
		if s.Icon == "" {
			if prev, ok := styles[k]; ok {
				s.Icon = prev.Icon
			} else {
				s.Icon = styles["default"].Icon
			}
		}
		styles[k] = s
	}
	return styles
}

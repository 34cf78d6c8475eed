package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Level   string        `yaml:"level"`
	Player  Tuning        `yaml:"player"`
	Input   Bindings      `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// Bindings names the raylib keys that feed the input state.
type Bindings struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Jump    string `yaml:"jump"`
	Dash    string `yaml:"dash"`
}

type LoggingConfig struct {
	File string `yaml:"file"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "First Person Controller",
			TargetFPS: 120,
		},
		Level:  "assets/levels/default.json",
		Player: DefaultTuning(),
		Input: Bindings{
			Forward: "w",
			Back:    "s",
			Left:    "a",
			Right:   "d",
			Jump:    "space",
			Dash:    "left_shift",
		},
	}
}

// Load reads a YAML file over Default and clamps the tuning to its domain.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Player.Validate(); err != nil {
		return nil, fmt.Errorf("player tuning: %w", err)
	}
	cfg.Player = cfg.Player.Clamped()
	return cfg, nil
}

// Package config resolves tool settings from three layers of increasing
// precedence: an optional YAML file, MODELREPORT_* environment variables, and
// command-line flags (applied by the cli package after Load).
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable the commands share.
type Config struct {
	Data        string   `yaml:"data" env:"MODELREPORT_DATA"`
	Out         string   `yaml:"out" env:"MODELREPORT_OUT"`
	Formats     []string `yaml:"formats" env:"MODELREPORT_FORMATS" envSeparator:","`
	LogLevel    string   `yaml:"log_level" env:"MODELREPORT_LOG_LEVEL"`
	ChartWidth  int      `yaml:"chart_width" env:"MODELREPORT_CHART_WIDTH"`
	ChartHeight int      `yaml:"chart_height" env:"MODELREPORT_CHART_HEIGHT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Data:        "RawData/all_models_data.json",
		Out:         "Charts",
		Formats:     []string{"fbx", "obj", "gltf", "glb"},
		LogLevel:    "info",
		ChartWidth:  1280,
		ChartHeight: 640,
	}
}

// Load resolves the config: defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

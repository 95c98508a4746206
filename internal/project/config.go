// Package project loads the optional cherry.yaml build configuration.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "cherry.yaml"

// Config carries per-project build settings. All fields are optional
// in the file; empty values keep their defaults.
type Config struct {
	Source    string            `yaml:"source"`
	BuildDir  string            `yaml:"build_dir"`
	Generator string            `yaml:"generator"`
	Defines   map[string]string `yaml:"defines"`
}

// Default returns the configuration used when no cherry.yaml exists.
func Default() Config {
	return Config{
		Source:    ".",
		BuildDir:  "build",
		Generator: "Unix Makefiles",
	}
}

// Load reads cherry.yaml from dir. A missing file is not an error and
// yields Default().
func Load(dir string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read %s: %w", FileName, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if cfg.Source == "" {
		cfg.Source = "."
	}
	if cfg.BuildDir == "" {
		cfg.BuildDir = "build"
	}
	if cfg.Generator == "" {
		cfg.Generator = "Unix Makefiles"
	}
	return cfg, nil
}

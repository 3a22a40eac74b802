// File: cmd/flewchain/config.go
// Optional YAML run configuration. A config file supplies defaults for the
// run parameters; explicitly set flags always win. Nothing is created
// implicitly and nothing is read unless --config names a file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML shape:
//
//	size: 5
//	workers: 4
//	plain: true
//
// Zero values mean "not set"; the flag default stays in force for them.
type fileConfig struct {
	Size    int  `yaml:"size"`
	Workers int  `yaml:"workers"`
	Plain   bool `yaml:"plain"`
}

// loadConfig reads and validates a YAML config file. Unknown keys are
// ignored; malformed YAML and impossible values are rejected here so the
// search never starts on a half-read configuration.
func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg fileConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Size < 0 {
		return fileConfig{}, fmt.Errorf("config %q: size must not be negative, got %d", path, cfg.Size)
	}
	if cfg.Workers < 0 {
		return fileConfig{}, fmt.Errorf("config %q: workers must not be negative, got %d", path, cfg.Workers)
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file written into a project directory.
const FileName = "financify.yaml"

// Config represents the top-level financify.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Currency string         `yaml:"currency"`
	Data     DataConfig     `yaml:"data"`
}

// BusinessConfig identifies the bookkeeping entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// DataConfig locates the durable entry store.
type DataConfig struct {
	File string `yaml:"file"` // relative to the project directory
}

// Load reads a financify.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Currency: "IDR",
		Data:     DataConfig{File: "financify.db"},
	}
}

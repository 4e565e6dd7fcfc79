package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LayoutPath   string `yaml:"layout"`   // .hcl, .yaml or .yml description
	MessagesPath string `yaml:"messages"` // YAML key/message map for "$key" values

	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
	ServePort int    `yaml:"serve_port"`

	EventsURL       string `yaml:"events_url"`
	EventsNamespace string `yaml:"events_namespace"`

	Demo bool `yaml:"demo"`
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LayoutPath == "" && !cfg.Demo {
		return nil, errors.New("LayoutPath is a required configuration field unless the demo is enabled")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		return nil, fmt.Errorf("ServePort %d is out of range", cfg.ServePort)
	}
	return &cfg, nil
}

// LoadConfigFile reads a YAML configuration file. Unknown keys are errors.
func LoadConfigFile(path string) (Config, error) {
	var cfg Config
	src, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadMessages reads a flat YAML map of message keys to texts.
func LoadMessages(path string) (map[string]string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages %s: %w", path, err)
	}
	messages := make(map[string]string)
	if err := yaml.Unmarshal(src, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages %s: %w", path, err)
	}
	return messages, nil
}

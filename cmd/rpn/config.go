package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the command configuration. It can be loaded from a YAML file and
// overridden by flags.
type Config struct {
	// Sentinel is the input line that ends the session.
	Sentinel string `yaml:"sentinel"`
	// Prompt is printed before each line when reading from a terminal.
	Prompt string `yaml:"prompt"`
	// Format is the fmt verb for results.
	Format string `yaml:"format"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// Echo prints the postfix form of each expression.
	Echo bool `yaml:"echo"`
	// Strict rejects unclosed parentheses during conversion.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Sentinel: "end",
		Prompt:   "> ",
		Format:   "%g",
		LogLevel: "warn",
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Format == "" {
		return Config{}, fmt.Errorf("config: format must not be empty")
	}
	return cfg, nil
}

package lisp

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the interpreter settings. It can be loaded from a YAML file.
type Config struct {
	// Prompt is printed by the REPL before every line.
	Prompt string `yaml:"prompt"`
	// HistoryFile is where the REPL keeps its line history, empty disables
	// it.
	HistoryFile string `yaml:"history_file"`
	// EchoInput prints every parsed expression before evaluating it.
	EchoInput bool `yaml:"echo_input"`
	// Trace logs every closure application.
	Trace bool `yaml:"trace"`
	// MaxDepth limits evaluation nesting, 0 means no limit.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Prompt:    "L> ",
		EchoInput: true,
	}
}

// ParseConfig decodes YAML settings on top of the defaults. Unknown keys are
// rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads settings from a YAML file.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("config: empty path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Validate checks that the settings make sense.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for its config when --config is not set.
const DefaultPath = "cheat.yaml"

// Config holds all gocheat configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Section selection and run behaviour
	Run RunConfig `yaml:"run"`

	// Terminal rendering
	Output OutputConfig `yaml:"output"`

	// Snippet interpreter
	Playground PlaygroundConfig `yaml:"playground"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// RunConfig controls which sections run and how failures are handled.
type RunConfig struct {
	// Sections to run when none are named on the command line. Empty = all.
	Sections []string `yaml:"sections"`

	// StopOnError aborts the run at the first failing section.
	StopOnError bool `yaml:"stop_on_error"`

	// Learner is the name greeted by the closing summary block.
	Learner string `yaml:"learner"`

	// Summary toggles the closing summary block.
	Summary bool `yaml:"summary"`
}

// OutputConfig controls how sections are rendered.
type OutputConfig struct {
	Color     string `yaml:"color"` // auto, always, never
	Width     int    `yaml:"width"`
	ShowNotes bool   `yaml:"show_notes"`
}

// PlaygroundConfig configures the snippet interpreter.
type PlaygroundConfig struct {
	Timeout         string   `yaml:"timeout"`
	AllowedPackages []string `yaml:"allowed_packages"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "gocheat",
		Version: "1.0.0",

		Run: RunConfig{
			StopOnError: true,
			Learner:     "Go Learner",
			Summary:     true,
		},

		Output: OutputConfig{
			Color: "auto",
			Width: 80,
		},

		Playground: PlaygroundConfig{
			Timeout: "5s",
			AllowedPackages: []string{
				"fmt", "strings", "strconv", "math", "regexp", "sort",
				"slices", "maps", "time", "errors", "encoding/json", "unicode",
			},
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Defaults still honour the environment
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if learner := os.Getenv("CHEAT_LEARNER"); learner != "" {
		c.Run.Learner = learner
	}
	if color := os.Getenv("CHEAT_COLOR"); color != "" {
		c.Output.Color = strings.ToLower(color)
	}
	if level := os.Getenv("CHEAT_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if debug := os.Getenv("CHEAT_DEBUG"); debug != "" {
		c.Logging.DebugMode = debug == "1" || strings.EqualFold(debug, "true")
	}
}

// GetPlaygroundTimeout returns the snippet timeout as a duration.
func (c *Config) GetPlaygroundTimeout() time.Duration {
	d, err := time.ParseDuration(c.Playground.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// ValidColorModes lists the accepted output.color values.
var ValidColorModes = []string{"auto", "always", "never"}

// ValidLogLevels lists the accepted logging.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !contains(ValidColorModes, c.Output.Color) {
		return fmt.Errorf("invalid output color mode: %s (valid: %v)", c.Output.Color, ValidColorModes)
	}
	if c.Output.Width < 0 {
		return fmt.Errorf("output width must not be negative, got %d", c.Output.Width)
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if c.Playground.Timeout != "" {
		if _, err := time.ParseDuration(c.Playground.Timeout); err != nil {
			return fmt.Errorf("invalid playground timeout %q: %w", c.Playground.Timeout, err)
		}
	}
	return nil
}

// ColorEnabled reports whether styled output should be produced for a
// terminal with the given capability.
func (c *Config) ColorEnabled(isTerminal bool) bool {
	switch c.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

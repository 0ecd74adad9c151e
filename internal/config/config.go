// Package config loads and validates the podcycle configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "podcycle.yaml"

// Defaults applied when the corresponding field is absent.
const (
	DefaultNamespace        = "default"
	DefaultPacingDelay      = Duration(10 * time.Second)
	DefaultReadinessTimeout = Duration(300 * time.Second)
	DefaultHandoffDelay     = Duration(3 * time.Second)
	DefaultMonitor          = "k9s"
)

// Config describes one reset run: which pod groups to act on and how
// the run is paced.
type Config struct {
	// Namespace is the namespace both pod groups live in.
	Namespace string `yaml:"namespace"`

	// StatefulSelector is the label selector of the ordered, ordinally
	// indexed group that is reset member by member.
	StatefulSelector string `yaml:"statefulSelector"`

	// DependentSelector is the label selector of the stateless group
	// deleted in one unordered pass after the stateful group is ready.
	DependentSelector string `yaml:"dependentSelector"`

	// PacingDelay is the wait between consecutive member deletions.
	PacingDelay Duration `yaml:"pacingDelay"`

	// ReadinessTimeout bounds the whole-group readiness barrier.
	ReadinessTimeout Duration `yaml:"readinessTimeout"`

	// HandoffDelay is the pause before handing control to the monitor.
	HandoffDelay Duration `yaml:"handoffDelay"`

	// LogDir is the directory the session log is written to.
	LogDir string `yaml:"logDir"`

	// Monitor is the interactive monitoring tool invoked after the run.
	Monitor string `yaml:"monitor"`

	// MonitorArgs are extra arguments passed to the monitor.
	MonitorArgs []string `yaml:"monitorArgs"`
}

// Load loads and validates a configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes loads and validates a configuration from bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.PacingDelay == 0 {
		c.PacingDelay = DefaultPacingDelay
	}
	if c.ReadinessTimeout == 0 {
		c.ReadinessTimeout = DefaultReadinessTimeout
	}
	if c.HandoffDelay == 0 {
		c.HandoffDelay = DefaultHandoffDelay
	}
	if c.LogDir == "" {
		c.LogDir = "."
	}
	if c.Monitor == "" {
		c.Monitor = DefaultMonitor
	}
}

// Validate checks the configuration for missing or inconsistent fields.
func (c *Config) Validate() error {
	if c.StatefulSelector == "" {
		return fmt.Errorf("statefulSelector is required")
	}
	if c.DependentSelector == "" {
		return fmt.Errorf("dependentSelector is required")
	}
	if c.Namespace == "" {
		return fmt.Errorf("namespace must not be empty")
	}
	if c.PacingDelay < 0 {
		return fmt.Errorf("pacingDelay must not be negative")
	}
	if c.ReadinessTimeout <= 0 {
		return fmt.Errorf("readinessTimeout must be positive")
	}
	if c.HandoffDelay < 0 {
		return fmt.Errorf("handoffDelay must not be negative")
	}
	return nil
}

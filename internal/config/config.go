package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds all poster configuration.
type Config struct {
	// Poster content, read-only at runtime
	Poster PosterConfig `yaml:"poster"`

	// Terminal UI behaviour
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "poster.yaml"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Poster: DefaultPoster(),
		UI:     DefaultUIConfig(),
		Logging: LoggingConfig{
			Level:     "info",
			DebugMode: false,
			Dir:       ".poster/logs",
		},
	}
}

// Load loads configuration from a YAML file on the OS filesystem.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	return NewStore(nil).Load(path)
}

// Save writes the configuration to a YAML file on the OS filesystem.
func (c *Config) Save(path string) error {
	return NewStore(nil).Save(path, c)
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if os.Getenv("POSTER_DARK_MODE") == "1" {
		c.UI.DarkMode = true
	}
	if os.Getenv("POSTER_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
	if level := os.Getenv("POSTER_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetCopyAckWindow returns how long the "Copied!" acknowledgement stays up.
func (c *Config) GetCopyAckWindow() time.Duration {
	if d, err := time.ParseDuration(c.UI.CopyAckWindow); err == nil && d > 0 {
		return d
	}
	return 1500 * time.Millisecond
}

// Validate reports contract violations in the poster configuration.
// Rendering never depends on it; `poster check` and strict callers do.
func (c *Config) Validate() error {
	var errs []error

	p := c.Poster
	if !p.Deadline.Valid() {
		errs = append(errs, fmt.Errorf("deadline %02d:%02d out of range", p.Deadline.Hour, p.Deadline.Minute))
	}
	if !p.Explainer.Valid() {
		errs = append(errs, fmt.Errorf("explainer %02d:%02d out of range", p.Explainer.Hour, p.Explainer.Minute))
	}
	if len(p.Examples) == 0 {
		errs = append(errs, errors.New("no examples configured"))
	}
	for i, ex := range p.Examples {
		if len(ex.Input) == 0 {
			errs = append(errs, fmt.Errorf("example %d: empty input", i+1))
		}
	}
	if _, err := time.ParseDuration(c.UI.CopyAckWindow); c.UI.CopyAckWindow != "" && err != nil {
		errs = append(errs, fmt.Errorf("invalid ui.copy_ack_window: %w", err))
	}

	return errors.Join(errs...)
}

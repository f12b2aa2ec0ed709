package config

import "dsaposter/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle - false = no log files
	Dir        string          `yaml:"dir"`        // Directory for category log files
	Categories map[string]bool `yaml:"categories"` // Per-category toggles
}

// LoggerOptions converts the config into logging package options.
// Category gating lives in the logging package.
func (c *LoggingConfig) LoggerOptions() logging.Options {
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		Dir:        c.Dir,
		Categories: c.Categories,
	}
}

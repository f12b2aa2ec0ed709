package config

// UIConfig holds terminal UI configuration.
type UIConfig struct {
	// DarkMode forces the dark theme (otherwise detected from the terminal)
	DarkMode bool `yaml:"dark_mode"`

	// CopyAckWindow is how long "Copied!" stays on the share button
	CopyAckWindow string `yaml:"copy_ack_window"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		DarkMode:      false,
		CopyAckWindow: "1.5s",
	}
}

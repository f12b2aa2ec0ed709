package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("POSTER_DARK_MODE enables dark theme", func(t *testing.T) {
		t.Setenv("POSTER_DARK_MODE", "1")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.UI.DarkMode)
	})

	t.Run("POSTER_DARK_MODE other values are ignored", func(t *testing.T) {
		t.Setenv("POSTER_DARK_MODE", "yes")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.False(t, cfg.UI.DarkMode)
	})

	t.Run("POSTER_DEBUG and POSTER_LOG_LEVEL", func(t *testing.T) {
		t.Setenv("POSTER_DEBUG", "1")
		t.Setenv("POSTER_LOG_LEVEL", "debug")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("Load applies overrides over file values", func(t *testing.T) {
		t.Setenv("POSTER_LOG_LEVEL", "error")
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/p.yaml", []byte("logging:\n  level: info\n"), 0644))
		cfg, err := NewStore(fs).Load("/p.yaml")
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Logging.Level)
	})
}

func TestLoggingConfig_LoggerOptions(t *testing.T) {
	lc := LoggingConfig{
		Level:      "warn",
		DebugMode:  true,
		Dir:        "logs",
		Categories: map[string]bool{"ui": false},
	}

	opts := lc.LoggerOptions()
	assert.True(t, opts.DebugMode)
	assert.Equal(t, "warn", opts.Level)
	assert.Equal(t, "logs", opts.Dir)
	assert.Equal(t, lc.Categories, opts.Categories)
}

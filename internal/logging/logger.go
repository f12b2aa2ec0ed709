// Package logging provides config-driven categorized file-based logging for the poster.
// Logs are written to the configured directory with separate files per category.
// Logging is controlled by logging.debug_mode - when false, no logs are written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup and shutdown
	CategoryConfig    Category = "config"    // Config load, save, live reload
	CategoryCountdown Category = "countdown" // Countdown runners
	CategoryClipboard Category = "clipboard" // Share/copy attempts
	CategoryUI        Category = "ui"        // Terminal UI events
	CategoryActivity  Category = "activity"  // User actions, one structured event per line
)

// Options mirrors config.LoggingConfig to avoid an import cycle
// (the config watcher logs through this package).
type Options struct {
	DebugMode  bool
	Level      string
	Dir        string
	Categories map[string]bool
}

func (o Options) categoryEnabled(category string) bool {
	if !o.DebugMode {
		return false
	}
	if o.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := o.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// Logger wraps a zap logger bound to one category file.
// A Logger with no underlying zap logger is a no-op.
type Logger struct {
	category Category
	logger   *zap.SugaredLogger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex

	cfg   Options
	cfgMu sync.RWMutex
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Initialize applies the logging config. With debug mode off it is a
// silent no-op and every logger returned by Get discards its output.
func Initialize(lc Options) error {
	CloseAll()

	cfgMu.Lock()
	cfg = lc
	cfgMu.Unlock()

	if lvl, err := zapcore.ParseLevel(lc.Level); err == nil {
		level.SetLevel(lvl)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}

	if !lc.DebugMode {
		return nil
	}
	if lc.Dir == "" {
		return fmt.Errorf("logging dir required in debug mode")
	}
	if err := os.MkdirAll(lc.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== poster logging initialized ===")
	boot.Info("Logs directory: %s", lc.Dir)
	boot.Info("Log level: %s", level.Level())
	return nil
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return cfg.categoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	loggersMu.RUnlock()

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	cfgMu.RLock()
	dir := cfg.Dir
	cfgMu.RUnlock()

	// Date prefix for easy rotation
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), level)

	l := &Logger{
		category: category,
		file:     file,
		logger:   zap.New(core).With(zap.String("cat", string(category))).Sugar(),
	}
	loggers[category] = l
	return l
}

// CloseAll flushes and closes every open category file.
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for cat, l := range loggers {
		_ = l.logger.Sync()
		_ = l.file.Close()
		delete(loggers, cat)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debugf(format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Infof(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Warnf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Errorf(format, args...)
}

// With returns a logger carrying extra structured fields.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	if l.logger == nil {
		return l
	}
	return &Logger{category: l.category, file: l.file, logger: l.logger.With(keysAndValues...)}
}

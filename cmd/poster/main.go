package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dsaposter/internal/config"
	"dsaposter/internal/countdown"
	"dsaposter/internal/logging"
	"dsaposter/internal/poster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool
	darkMode   bool
	noWatch    bool

	// Logger
	logger *zap.Logger

	// Swappable in tests
	clock     countdown.Clock = countdown.SystemClock
	newCopier                 = poster.NewCopier
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "poster",
	Short: "poster - daily DSA challenge poster for the terminal",
	Long: `poster renders today's DSA challenge: the problem, examples with
hidden outputs, live countdowns to the submission deadline and the
explainer session, and a shareable announcement.

Run without arguments to open the interactive poster.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Interactive mode owns the terminal; stderr logging would corrupt it.
		if cmd == cmd.Root() {
			logger = zap.NewNop()
			return nil
		}

		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: runPoster,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to the poster config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Force the dark theme")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the poster when the config file changes")

	shareCmd.Flags().BoolVar(&shareCopy, "copy", false, "Also copy the text to the system clipboard")
	countdownCmd.Flags().BoolVarP(&countdownWatch, "watch", "w", false, "Show live progress bars until both targets are reached")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	rootCmd.AddCommand(
		shareCmd,
		countdownCmd,
		checkCmd,
		initCmd,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagOverrides(cfg)
	if err := logging.Initialize(cfg.Logging.LoggerOptions()); err != nil {
		// File logging is best effort.
		fmt.Fprintf(os.Stderr, "[logging] %v\n", err)
	}
	return cfg, nil
}

// applyFlagOverrides layers command-line flags over a loaded config. It runs
// on the first load and on every live reload.
func applyFlagOverrides(cfg *config.Config) {
	if darkMode {
		cfg.UI.DarkMode = true
	}
	if verbose {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

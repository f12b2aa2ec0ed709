package main

import (
	"fmt"

	"dsaposter/internal/config"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	initForce bool

	// Filesystem used by init; tests swap in a memory fs.
	initFs afero.Fs = afero.NewOsFs()
)

// initCmd writes a starter config
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default poster config",
	Long: `Writes the built-in poster (Day 2, Min and Max in Array) to the config
path so it can be edited for future days. Refuses to overwrite an
existing file unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store := config.NewStore(initFs)
	if store.Exists(configPath) && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	if err := store.Save(configPath, config.DefaultConfig()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	logger.Info("config written", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}

package main

import (
	"errors"
	"fmt"

	"dsaposter/internal/challenge"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd validates the config and the published example outputs
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the poster config and verify example outputs",
	Long: `Checks that deadline and explainer times are in range, that every
example has input, and that each published [min, max] output matches the
input array.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	problems := 0
	if err := cfg.Validate(); err != nil {
		var joined interface{ Unwrap() []error }
		if errors.As(err, &joined) {
			for _, e := range joined.Unwrap() {
				fmt.Fprintf(out, "✗ %v\n", e)
				problems++
			}
		} else {
			fmt.Fprintf(out, "✗ %v\n", err)
			problems++
		}
	}

	for _, m := range challenge.Verify(cfg.Poster.Examples) {
		fmt.Fprintf(out, "✗ %s\n", m)
		problems++
	}

	logger.Debug("check finished", zap.String("config", configPath), zap.Int("problems", problems))
	if problems > 0 {
		return fmt.Errorf("%s: %d problem(s) found", configPath, problems)
	}
	fmt.Fprintf(out, "✓ %s: day %d, %d examples verified\n", configPath, cfg.Poster.Day, len(cfg.Poster.Examples))
	return nil
}

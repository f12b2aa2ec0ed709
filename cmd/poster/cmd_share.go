package main

import (
	"fmt"

	"dsaposter/internal/poster"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var shareCopy bool

// shareCmd prints the announcement text
var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print today's share announcement",
	Long: `Prints the four-line announcement for today's challenge.

With --copy the text is also placed on the system clipboard. A clipboard
failure is not an error; the text is still printed.`,
	Args: cobra.NoArgs,
	RunE: runShare,
}

func runShare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text := poster.ComposeShareText(cfg.Poster)
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if shareCopy {
		if newCopier().Copy(text) {
			fmt.Fprintln(cmd.ErrOrStderr(), poster.LabelCopied)
		}
		logger.Debug("share copy attempted", zap.Int("day", cfg.Poster.Day))
	}
	return nil
}

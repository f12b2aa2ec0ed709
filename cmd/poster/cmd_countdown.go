package main

import (
	"context"
	"fmt"
	"io"

	"dsaposter/internal/config"
	"dsaposter/internal/countdown"
	"dsaposter/internal/poster"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var countdownWatch bool

// countdownCmd prints the time left to today's deadline and explainer
var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Show time remaining until the deadline and explainer",
	Long: `Prints HH:MM:SS remaining for the submission deadline and the
explainer session, or "Started / Closed" once a target has passed.

With --watch both countdowns tick once per second as progress bars until
they are reached or the command is interrupted.`,
	Args: cobra.NoArgs,
	RunE: runCountdown,
}

type target struct {
	label string
	at    config.TimeOfDay
}

func targetsFor(p config.PosterConfig) []target {
	return []target{
		{label: poster.DeadlineLabel(p), at: p.Deadline},
		{label: poster.ExplainerLabel(p), at: p.Explainer},
	}
}

func runCountdown(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	targets := targetsFor(cfg.Poster)

	if countdownWatch {
		return watchCountdowns(commandContext(cmd), cmd.OutOrStdout(), targets)
	}

	now := clock.Now()
	for _, t := range targets {
		cd := countdown.New(countdown.MillisecondsUntil(t.at, now))
		fmt.Fprintf(cmd.OutOrStdout(), "%-32s %s\n", t.label, remainingText(cd))
	}
	return nil
}

func remainingText(cd countdown.Countdown) string {
	if cd.Reached() {
		return poster.LabelReached
	}
	return cd.Fields().String()
}

// watchCountdowns runs one Runner per target, each driving its own bar.
// Bar progress is elapsed milliseconds out of the initial remaining time.
func watchCountdowns(ctx context.Context, out io.Writer, targets []target) error {
	progress := mpb.New(mpb.WithOutput(out), mpb.WithWidth(40))
	g, gctx := errgroup.WithContext(ctx)

	now := clock.Now()
	for _, t := range targets {
		ms := countdown.MillisecondsUntil(t.at, now)
		if ms == 0 {
			fmt.Fprintf(out, "%-32s %s\n", t.label, poster.LabelReached)
			continue
		}

		bar := progress.AddBar(ms,
			mpb.PrependDecorators(decor.Name(t.label, decor.WCSyncSpaceR)),
			mpb.AppendDecorators(decor.OnComplete(decor.Any(remainingDecor, decor.WCSyncSpace), poster.LabelReached)),
		)
		updates := make(chan countdown.Update, 4)
		r := countdown.NewRunner(t.label, ms, clock, countdown.WithListener(updates))

		g.Go(func() error {
			return followRunner(gctx, r, updates, bar, ms)
		})
	}

	err := g.Wait()
	progress.Wait()
	return err
}

// followRunner mirrors a runner's ticks onto bar until it is reached or
// ctx ends. An interrupted watch is not an error.
func followRunner(ctx context.Context, r *countdown.Runner, updates <-chan countdown.Update, bar *mpb.Bar, total int64) error {
	r.Start(ctx)
	defer r.Stop()

	for {
		select {
		case <-ctx.Done():
			bar.Abort(false)
			return nil

		case u := <-updates:
			bar.SetCurrent(total - u.Countdown.Remaining())

		case <-r.Done():
			cd := r.Snapshot()
			if !cd.Reached() {
				bar.Abort(false)
				return nil
			}
			bar.SetCurrent(total)
			logger.Debug("countdown reached", zap.String("label", r.Label()))
			return nil
		}
	}
}

func remainingDecor(s decor.Statistics) string {
	return countdown.New(s.Total - s.Current).Fields().String()
}

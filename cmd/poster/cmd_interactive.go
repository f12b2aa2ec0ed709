package main

import (
	"errors"

	"dsaposter/cmd/poster/ui"
	"dsaposter/internal/config"
	"dsaposter/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runPoster launches the interactive poster.
func runPoster(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	boot := logging.Get(logging.CategoryBoot)

	var reloads <-chan *config.Config
	if !noWatch {
		w, err := newConfigWatcher()
		if err != nil {
			boot.Warn("live reload disabled: %v", err)
		} else if err := w.Start(commandContext(cmd)); err != nil {
			boot.Warn("live reload disabled: %v", err)
			w.Stop()
		} else {
			defer w.Stop()
			reloads = w.Updates()
		}
	}

	m := ui.New(ui.Options{
		Config:  cfg,
		Clock:   clock,
		Copier:  newCopier(),
		Reloads: reloads,
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(commandContext(cmd)),
	)
	final, err := p.Run()

	// The final model owns the live countdowns after any reload.
	if fm, ok := final.(ui.Model); ok {
		fm.Shutdown()
	} else {
		m.Shutdown()
	}
	boot.Info("poster closed")

	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// newConfigWatcher watches the config file and keeps flag overrides on
// every reloaded config.
func newConfigWatcher() (*config.Watcher, error) {
	return config.NewWatcher(configPath, nil, config.WithReloadHook(applyFlagOverrides))
}

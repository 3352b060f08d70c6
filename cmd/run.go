package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	gitadapter "timeline/adapters/git"
	storageadapter "timeline/adapters/storage"
	"timeline/logging"
	"timeline/services"
	"timeline/state"
	"timeline/storage"
	"timeline/ui"
)

// RunCmd opens the interactive timeline panel
type RunCmd struct {
	Days       int  `help:"Narrate window in days (0 = settings default)" default:"0"`
	AutoBackup bool `help:"Run the auto-backup scheduler for registered vaults while the panel is open" default:"true" negatable:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting timeline panel", "vault", cli.Vault)

	tl := cli.newTimeline()
	model := ui.NewModel(tl, cli.activityDays(r.Days))

	// The scheduler is just another caller: it goes through Timeline
	// instances with the same mutation discipline as the panel.
	if r.AutoBackup {
		if interval := cli.backupInterval(); interval > 0 {
			store, err := storage.NewStore(cli.DBPath)
			if err != nil {
				logging.Logger.Warn("Registry unavailable, auto-backup disabled", "error", err)
			} else {
				defer store.Close()

				scheduler := services.NewBackupScheduler(
					storageadapter.NewSQLiteRepository(store),
					cli.timelineFactory(),
					interval,
				)
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				scheduler.Start(ctx)
				defer scheduler.Stop()
			}
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Panel program error", "error", err)
		return fmt.Errorf("error running panel: %w", err)
	}
	return nil
}

// backupInterval resolves the auto-backup interval from settings
func (c *CLI) backupInterval() time.Duration {
	if c.settings != nil && c.settings.BackupIntervalMinutes != nil && *c.settings.BackupIntervalMinutes > 0 {
		return time.Duration(*c.settings.BackupIntervalMinutes) * time.Minute
	}
	return 0
}

// timelineFactory builds per-vault timelines for the scheduler
func (c *CLI) timelineFactory() services.TimelineFactory {
	cfg := c.serviceConfig()
	return func(path string) *services.Timeline {
		engine := gitadapter.NewCLIEngine(path)
		return services.NewTimeline(engine, cfg).
			WithRepoLock(state.NewRepoLock(path))
	}
}

package cmd

import (
	"context"
	"fmt"
)

// HistoryCmd shows recent captures, newest first
type HistoryCmd struct {
	Limit int `help:"Maximum number of captures to show" default:"20"`
}

// Run executes the history command
func (hc *HistoryCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()

	entries, err := tl.History(context.Background(), hc.Limit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No captures yet.")
		return nil
	}

	for _, entry := range entries {
		message := entry.Message
		if message == "" {
			message = "(no message)"
		}
		fmt.Printf("%s  %s  %s  %s\n",
			entry.ShortHash,
			entry.Timestamp.Local().Format("2006-01-02 15:04"),
			entry.Author,
			message)
	}
	return nil
}

// ChangesCmd lists pending working-tree changes by classification
type ChangesCmd struct{}

// Run executes the changes command
func (cc *ChangesCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()

	changes, err := tl.Changes(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load changes: %w", err)
	}

	if !changes.HasChanges() {
		fmt.Println("No pending changes.")
		return nil
	}

	printSection := func(title string, paths []string) {
		if len(paths) == 0 {
			return
		}
		fmt.Printf("%s (%d):\n", title, len(paths))
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
	}

	printSection("Staged", changes.Staged)
	printSection("Modified", changes.Unstaged)
	printSection("New", changes.Untracked)
	return nil
}

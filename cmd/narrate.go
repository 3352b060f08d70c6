package cmd

import (
	"context"
	"fmt"
)

// NarrateCmd summarizes recent capture activity in natural language
type NarrateCmd struct {
	Days  int  `help:"Window size in days (0 = settings default)" default:"0"`
	Stats bool `help:"Also print the raw statistics"`
}

// Run executes the narrate command
func (nc *NarrateCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	days := cli.activityDays(nc.Days)

	summary, err := tl.Narrate(context.Background(), days)
	if err != nil {
		return fmt.Errorf("failed to narrate activity: %w", err)
	}

	fmt.Println(summary.Narrative)

	if nc.Stats {
		fmt.Printf("\ncaptures: %d\nactive days: %d\n",
			summary.Stats.TotalCaptures, summary.Stats.ActiveDays)
		if summary.Stats.BusiestDay != nil {
			fmt.Printf("busiest day: %s (%d)\n",
				summary.Stats.BusiestDay.Day, summary.Stats.BusiestDay.Captures)
		}
		for _, file := range summary.Stats.TopFiles {
			fmt.Printf("  %s: %d\n", file.Path, file.Captures)
		}
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"

	"timeline/services"
)

// StatusCmd prints the compact glyph status line for status bars
type StatusCmd struct{}

// Run executes the status command
func (sc *StatusCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()

	snap, changes, err := tl.StatusSnapshot(context.Background())
	if err != nil {
		// Status bars poll this command; degrade to the no-timeline
		// glyph rather than failing the bar.
		fmt.Print(services.GlyphNoTimeline)
		return nil
	}

	fmt.Print(services.RenderStatusLine(services.ProjectStatus(snap, changes)))
	return nil
}

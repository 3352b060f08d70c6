package cmd

import (
	"context"
	"time"
)

// CaptureCmd commits every pending change in the vault
type CaptureCmd struct {
	Message string `arg:"" optional:"" help:"Capture message (defaults to a timestamped one)"`
}

// Run executes the capture command
func (cc *CaptureCmd) Run(cli *CLI) error {
	message := cc.Message
	if message == "" {
		message = "timeline capture " + time.Now().Format("2006-01-02 15:04")
	}

	tl := cli.newTimeline()
	return printResult(tl.Capture(context.Background(), message))
}

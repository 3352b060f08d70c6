package cmd

import "context"

// ExperimentCmd groups the experiment branch operations
type ExperimentCmd struct {
	Begin   ExperimentBeginCmd   `cmd:"" help:"Start a new experiment"`
	Keep    ExperimentKeepCmd    `cmd:"" help:"Merge the current experiment into the main timeline and delete it"`
	Discard ExperimentDiscardCmd `cmd:"" help:"Delete the current experiment without merging (destructive)"`
}

// ExperimentBeginCmd starts a new experiment branch
type ExperimentBeginCmd struct {
	Name string `arg:"" help:"Experiment name (sanitized to lowercase letters, digits and hyphens)"`
}

// Run executes the experiment begin command
func (ec *ExperimentBeginCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	return printResult(tl.ExperimentBegin(context.Background(), ec.Name))
}

// ExperimentKeepCmd merges the current experiment back into the main timeline
type ExperimentKeepCmd struct{}

// Run executes the experiment keep command
func (ec *ExperimentKeepCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	return printResult(tl.Keep(context.Background()))
}

// ExperimentDiscardCmd deletes the current experiment without merging
type ExperimentDiscardCmd struct{}

// Run executes the experiment discard command
func (ec *ExperimentDiscardCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	return printResult(tl.Discard(context.Background()))
}

// GotoCmd checks out a capture or reference
type GotoCmd struct {
	Ref string `arg:"" help:"Capture identifier or reference (e.g. main, HEAD~1)"`
}

// Run executes the goto command
func (gc *GotoCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	return printResult(tl.GoTo(context.Background(), gc.Ref))
}

// InitCmd starts a new timeline in the vault
type InitCmd struct{}

// Run executes the init command
func (ic *InitCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	return printResult(tl.Initialize(context.Background()))
}

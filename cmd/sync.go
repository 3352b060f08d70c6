package cmd

import "context"

// UpdateCmd fetches and merges new captures from the backup location
type UpdateCmd struct{}

// Run executes the update command
func (uc *UpdateCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	return printResult(tl.Update(context.Background()))
}

// BackupCmd sends local captures to the backup location
type BackupCmd struct{}

// Run executes the backup command
func (bc *BackupCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	return printResult(tl.Backup(context.Background()))
}

// LinkCmd registers the backup location for the vault
type LinkCmd struct {
	URL string `arg:"" help:"Backup location URL"`
}

// Run executes the link command
func (lc *LinkCmd) Run(cli *CLI) error {
	tl := cli.newTimeline()
	return printResult(tl.LinkRemote(context.Background(), lc.URL))
}

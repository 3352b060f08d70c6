package cmd

import (
	"timeline/server"
)

// ServeCmd serves the timeline panel over SSH
type ServeCmd struct {
	Host string `help:"Host to bind the SSH server to" default:"localhost"`
	Port string `help:"Port to bind the SSH server to" default:"2222"`
	Days int    `help:"Narrate window in days (0 = settings default)" default:"0"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	srv, err := server.NewServer(s.Host, s.Port, cli.Vault, cli.activityDays(s.Days), cli.serviceConfig())
	if err != nil {
		return err
	}
	return srv.Start()
}

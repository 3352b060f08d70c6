package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	gitadapter "timeline/adapters/git"
	"timeline/config"
	"timeline/domain"
	"timeline/logging"
	"timeline/paths"
	"timeline/services"
	"timeline/state"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DBPath      string           `help:"Path to the vault registry database" type:"path" default:"~/.timeline/registry.db" env:"TIMELINE_DB_PATH"`
	Vault       string           `help:"Path of the vault to operate on" short:"C" default:"." type:"path"`
	Remote      string           `help:"Remote name used for backups" default:"origin" env:"TIMELINE_REMOTE"`

	Run        RunCmd        `cmd:"" help:"Open the interactive timeline panel (default)" default:"1"`
	Init       InitCmd       `cmd:"" help:"Start a timeline in the vault"`
	Capture    CaptureCmd    `cmd:"" help:"Capture all pending changes"`
	Update     UpdateCmd     `cmd:"" help:"Receive new captures from the backup location"`
	Backup     BackupCmd     `cmd:"" help:"Send local captures to the backup location"`
	Changes    ChangesCmd    `cmd:"" help:"List pending changes"`
	History    HistoryCmd    `cmd:"" help:"Show recent captures"`
	Narrate    NarrateCmd    `cmd:"" help:"Narrate recent activity"`
	Status     StatusCmd     `cmd:"" help:"Print the glyph status line for status bars" hidden:""`
	Experiment ExperimentCmd `cmd:"" help:"Manage experiments (begin, keep, discard)"`
	Goto       GotoCmd       `cmd:"" help:"Travel to a capture or reference"`
	Link       LinkCmd       `cmd:"" help:"Link a backup location"`
	Vaults     VaultsCmd     `cmd:"" help:"Manage registered vaults"`
	Serve      ServeCmd      `cmd:"" help:"Serve the timeline panel over SSH"`

	// Internal field for settings (not a flag)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.DBPath == paths.ExpandPath("~/.timeline/registry.db") {
			if _, hasEnv := os.LookupEnv("TIMELINE_DB_PATH"); !hasEnv {
				if c.settings.DBPath != "" {
					c.DBPath = c.settings.DBPath
				}
			}
		}

		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("TIMELINE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TIMELINE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Remote == "origin" {
			if _, hasEnv := os.LookupEnv("TIMELINE_REMOTE"); !hasEnv {
				if c.settings.RemoteName != "" {
					c.Remote = c.settings.RemoteName
				}
			}
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Set environment variables AFTER initialization so child processes inherit
	// debug settings and append to the SAME log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TIMELINE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TIMELINE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("TIMELINE_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}

// serviceConfig builds the timeline configuration from flags and settings
func (c *CLI) serviceConfig() services.Config {
	cfg := services.DefaultConfig()
	cfg.RemoteName = c.Remote

	if c.settings != nil {
		if len(c.settings.DefaultBranches) > 0 {
			cfg.DefaultBranches = c.settings.DefaultBranches
		}
		if c.settings.TopFiles != nil && *c.settings.TopFiles > 0 {
			cfg.TopFiles = *c.settings.TopFiles
		}
	}
	return cfg
}

// activityDays resolves the narrate window, preferring the explicit flag
func (c *CLI) activityDays(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if c.settings != nil && c.settings.ActivityDays != nil && *c.settings.ActivityDays > 0 {
		return *c.settings.ActivityDays
	}
	return 7
}

// newTimeline builds a Timeline for the selected vault with the
// cross-process mutation lock attached
func (c *CLI) newTimeline() *services.Timeline {
	engine := gitadapter.NewCLIEngine(c.Vault)
	return services.NewTimeline(engine, c.serviceConfig()).
		WithRepoLock(state.NewRepoLock(c.Vault))
}

// printResult reports an operation outcome to the user. Expected failures
// (nothing to capture, already on main, ...) already carry their own
// sentence; only engine breakage surfaces as a hard error.
func printResult(r domain.Result) error {
	if !r.Ok && r.Kind == domain.KindUnderlyingToolFailure {
		return errors.New(r.Message)
	}
	fmt.Println(r.Message)
	return nil
}

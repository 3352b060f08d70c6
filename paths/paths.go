package paths

import (
	"os"
	"path/filepath"
)

// GetTimelineHome returns TIMELINE_HOME or ~/.timeline default
func GetTimelineHome() string {
	timelineHome := os.Getenv("TIMELINE_HOME")
	if timelineHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".timeline"
		}
		return filepath.Join(homeDir, ".timeline")
	}
	return ExpandPath(timelineHome)
}

// GetDBPath returns $TIMELINE_HOME/registry.db
func GetDBPath() string {
	return filepath.Join(GetTimelineHome(), "registry.db")
}

// GetSettingsPath returns $TIMELINE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetTimelineHome(), "settings.json")
}

// GetLocksPath returns $TIMELINE_HOME/locks
func GetLocksPath() string {
	return filepath.Join(GetTimelineHome(), "locks")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

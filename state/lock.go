package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"timeline/paths"
)

// RepoLock serializes mutating operations on a single working tree across
// processes. The interactive panel, the CLI and the auto-backup scheduler
// all acquire it before touching the tree; the underlying index has no
// internal locking of its own.
type RepoLock struct {
	path string
	file *os.File
}

// NewRepoLock returns a lock scoped to the given repository path
func NewRepoLock(repoPath string) *RepoLock {
	return &RepoLock{path: lockFilePath(repoPath)}
}

// lockFilePath maps a repository path to a lock file under $TIMELINE_HOME/locks
func lockFilePath(repoPath string) string {
	name := strings.Trim(repoPath, string(os.PathSeparator))
	name = strings.NewReplacer("/", "-", "\\", "-", ":", "-").Replace(name)
	return filepath.Join(paths.GetLocksPath(), name+".lock")
}

// Acquire takes the exclusive lock, blocking until it is available
func (l *RepoLock) Acquire() error {
	if l.file != nil {
		return fmt.Errorf("lock already held: %s", l.path)
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := lockFile(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	l.file = file
	return nil
}

// Release drops the lock. Safe to call when the lock is not held.
func (l *RepoLock) Release() error {
	if l.file == nil {
		return nil
	}

	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil

	if unlockErr != nil {
		return fmt.Errorf("failed to release lock: %w", unlockErr)
	}
	return closeErr
}

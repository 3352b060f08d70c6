package git

import (
	"context"
	"fmt"
	"strings"

	"timeline/domain"
	"timeline/logging"
)

// Remotes lists the names of configured remotes
func Remotes(ctx context.Context, path string) ([]string, error) {
	output, err := run(ctx, path, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return lines(output), nil
}

// AddRemote registers a remote under the given name
func AddRemote(ctx context.Context, path, name, url string) error {
	logging.Logger.Info("Adding remote", "path", path, "remote", name)
	if _, err := run(ctx, path, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %q: %w", name, err)
	}
	return nil
}

// Fetch updates remote-tracking branches without touching the working tree
func Fetch(ctx context.Context, path, remote string) error {
	if _, err := run(ctx, path, "fetch", remote); err != nil {
		return fmt.Errorf("failed to fetch from %q: %w", remote, err)
	}
	return nil
}

// HasRemoteBranch reports whether the remote-tracking ref for the branch
// exists. Callers fetch first so the answer reflects the remote.
func HasRemoteBranch(ctx context.Context, path, remote, branch string) (bool, error) {
	ref := fmt.Sprintf("refs/remotes/%s/%s", remote, branch)
	if _, err := run(ctx, path, "rev-parse", "--verify", "--quiet", ref); err != nil {
		return false, nil
	}
	return true, nil
}

// Pull fetches and merges from the remote. A merge stopped on conflicts
// returns domain.ErrMergeConflict with the conflict state left in place.
// With no tracking branch configured, git refuses a bare pull; such callers
// pass the branch explicitly.
func Pull(ctx context.Context, path, remote, branch string) error {
	logging.Logger.Info("Pulling from remote", "path", path, "remote", remote, "branch", branch)

	args := []string{"pull", "--no-rebase", remote}
	if branch != "" {
		args = append(args, branch)
	}
	if _, err := run(ctx, path, args...); err != nil {
		if conflicted, probeErr := HasConflicts(ctx, path); probeErr == nil && conflicted {
			return fmt.Errorf("pulling from %q: %w", remote, domain.ErrMergeConflict)
		}
		return fmt.Errorf("failed to pull from %q: %w", remote, err)
	}
	return nil
}

// Push sends local captures to the remote. Uses --porcelain so rejection is
// detected from the machine-readable ref status, not from free-text stderr.
func Push(ctx context.Context, path, remote string) error {
	logging.Logger.Info("Pushing to remote", "path", path, "remote", remote)

	output, err := run(ctx, path, "push", "--porcelain", "--set-upstream", remote, "HEAD")
	if err != nil {
		// On failure git still prints the porcelain ref status to stdout;
		// a leading '!' marks a rejected ref.
		if pushWasRejected(output) {
			return fmt.Errorf("pushing to %q: %w", remote, domain.ErrPushRejected)
		}
		return fmt.Errorf("failed to push to %q: %w", remote, err)
	}
	return nil
}

func pushWasRejected(porcelain string) bool {
	for _, line := range lines(porcelain) {
		if strings.HasPrefix(line, "!") {
			return true
		}
	}
	return false
}

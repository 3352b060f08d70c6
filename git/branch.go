package git

import (
	"context"
	"fmt"

	"timeline/domain"
	"timeline/logging"
)

// Branches lists local branch names
func Branches(ctx context.Context, path string) ([]string, error) {
	output, err := run(ctx, path, "for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return lines(output), nil
}

// CreateBranch creates a new branch and switches to it
func CreateBranch(ctx context.Context, path, name string) error {
	logging.Logger.Info("Creating branch", "path", path, "branch", name)
	if _, err := run(ctx, path, "checkout", "-b", name); err != nil {
		return fmt.Errorf("failed to create branch %q: %w", name, err)
	}
	return nil
}

// Merge merges the given branch into the current one. When the merge stops
// on conflicts the conflict state is left in place for the operator and
// domain.ErrMergeConflict is returned.
func Merge(ctx context.Context, path, branch string) error {
	logging.Logger.Info("Merging branch", "path", path, "branch", branch)

	if _, err := run(ctx, path, "merge", "--no-edit", branch); err != nil {
		if conflicted, probeErr := HasConflicts(ctx, path); probeErr == nil && conflicted {
			return fmt.Errorf("merging %q: %w", branch, domain.ErrMergeConflict)
		}
		return fmt.Errorf("failed to merge %q: %w", branch, err)
	}
	return nil
}

// DeleteBranch removes a branch. With force, unmerged changes are discarded;
// this is intentionally destructive.
func DeleteBranch(ctx context.Context, path, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	logging.Logger.Info("Deleting branch", "path", path, "branch", name, "force", force)

	if _, err := run(ctx, path, "branch", flag, name); err != nil {
		return fmt.Errorf("failed to delete branch %q: %w", name, err)
	}
	return nil
}

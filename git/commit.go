package git

import (
	"context"
	"fmt"
	"strings"

	"timeline/logging"
)

// StageAll stages every pending path, including untracked files
func StageAll(ctx context.Context, path string) error {
	if _, err := run(ctx, path, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Commit records the staged changes and returns the new commit hash
func Commit(ctx context.Context, path, message string) (string, error) {
	logging.Logger.Info("Creating capture", "path", path)

	if _, err := run(ctx, path, "commit", "-m", message); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	output, err := run(ctx, path, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve new commit: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// Checkout switches the working tree to the given reference
func Checkout(ctx context.Context, path, ref string) error {
	logging.Logger.Info("Checking out reference", "path", path, "ref", ref)
	if _, err := run(ctx, path, "checkout", ref); err != nil {
		return fmt.Errorf("failed to check out %q: %w", ref, err)
	}
	return nil
}

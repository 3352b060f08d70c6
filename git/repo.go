package git

import (
	"context"
	"fmt"
	"strings"

	"timeline/logging"
)

// IsRepository checks if the given path is within a git repository.
// Returns true and the repository root path if it is, false and empty
// string otherwise.
func IsRepository(ctx context.Context, path string) (bool, string) {
	output, err := run(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		logging.Logger.Debug("Not a git repository", "path", path)
		return false, ""
	}
	return true, strings.TrimSpace(output)
}

// Initialize creates a new repository in place. Calling it on an existing
// repository is the caller's problem; git itself treats it as a reinit.
func Initialize(ctx context.Context, path string) error {
	logging.Logger.Info("Initializing repository", "path", path)
	if _, err := run(ctx, path, "init"); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}

// CurrentBranch returns the name of the checked-out branch
func CurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := run(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve current branch: %w", err)
	}
	return strings.TrimSpace(output), nil
}

package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"timeline/logging"
)

// run executes git with the given arguments inside dir and returns stdout.
// Stderr is folded into the returned error so callers can log it, but
// callers must never classify failures by matching that text.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	logging.Logger.Debug("Running git command", "dir", dir, "args", args)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		logging.Logger.Debug("Git command failed", "args", args, "error", err, "stderr", msg)
		// Stdout is returned even on failure; some callers (push --porcelain)
		// classify the failure from the machine-readable output.
		if msg == "" {
			return stdout.String(), fmt.Errorf("git %s: %w", args[0], err)
		}
		return stdout.String(), fmt.Errorf("git %s: %w: %s", args[0], err, msg)
	}

	return stdout.String(), nil
}

// lines splits command output into trimmed non-empty lines
func lines(output string) []string {
	var result []string
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimRight(line, "\r"); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

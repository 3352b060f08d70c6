package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"timeline/domain"
)

// Changes classifies every pending path via git status --porcelain
func Changes(ctx context.Context, path string) (domain.ChangeSet, error) {
	output, err := run(ctx, path, "status", "--porcelain")
	if err != nil {
		return domain.ChangeSet{}, fmt.Errorf("git status failed: %w", err)
	}
	return parsePorcelain(output), nil
}

// parsePorcelain turns porcelain v1 output into a ChangeSet. Each path lands
// in exactly one set: untracked beats everything, a worktree modification
// beats an earlier staging of the same path.
func parsePorcelain(output string) domain.ChangeSet {
	var cs domain.ChangeSet
	for _, line := range lines(output) {
		if len(line) < 4 {
			continue
		}
		index, worktree := line[0], line[1]
		name := strings.TrimSpace(line[3:])
		// Renames are reported as "old -> new"; the new path is the one
		// that exists in the working tree.
		if idx := strings.Index(name, " -> "); idx >= 0 {
			name = name[idx+4:]
		}

		switch {
		case index == '?' || worktree == '?':
			cs.Untracked = append(cs.Untracked, name)
		case worktree != ' ':
			cs.Unstaged = append(cs.Unstaged, name)
		case index != ' ':
			cs.Staged = append(cs.Staged, name)
		}
	}
	return cs
}

// AheadBehind returns how many captures the local branch is ahead of and
// behind its tracking branch. Returns domain.ErrNoUpstream when no tracking
// branch is configured.
func AheadBehind(ctx context.Context, path string) (ahead, behind int, err error) {
	// Probe for an upstream first so its absence stays distinguishable
	// from a real rev-list failure.
	if _, err := run(ctx, path, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}"); err != nil {
		return 0, 0, domain.ErrNoUpstream
	}

	output, err := run(ctx, path, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0, fmt.Errorf("git rev-list failed: %w", err)
	}

	parts := strings.Fields(strings.TrimSpace(output))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %s", output)
	}

	ahead, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse ahead count: %w", err)
	}
	behind, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse behind count: %w", err)
	}

	return ahead, behind, nil
}

// HasConflicts reports whether the index holds unmerged paths. This is the
// structured conflict probe: exit status plus ls-files, no message sniffing.
func HasConflicts(ctx context.Context, path string) (bool, error) {
	output, err := run(ctx, path, "ls-files", "--unmerged")
	if err != nil {
		return false, fmt.Errorf("git ls-files failed: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"timeline/domain"
)

// logFormat uses unit separators so free-text commit messages cannot
// collide with the field delimiter.
const logFormat = "%H%x1f%an%x1f%at%x1f%s"

// Log returns up to limit captures, newest first
func Log(ctx context.Context, path string, limit int) ([]domain.HistoryEntry, error) {
	args := []string{"log", "--pretty=format:" + logFormat}
	if limit > 0 {
		args = append(args, fmt.Sprintf("-%d", limit))
	}
	return logEntries(ctx, path, args)
}

// LogSince returns all captures with a timestamp at or after since
func LogSince(ctx context.Context, path string, since time.Time) ([]domain.HistoryEntry, error) {
	args := []string{"log", "--pretty=format:" + logFormat, "--since=" + since.Format(time.RFC3339)}
	return logEntries(ctx, path, args)
}

func logEntries(ctx context.Context, path string, args []string) ([]domain.HistoryEntry, error) {
	output, err := run(ctx, path, args...)
	if err != nil {
		// A repository without commits has no log; report it as empty
		// history rather than an error.
		if empty, probeErr := hasNoCommits(ctx, path); probeErr == nil && empty {
			return nil, nil
		}
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	var entries []domain.HistoryEntry
	for _, line := range lines(output) {
		entry, err := parseLogLine(line)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseLogLine(line string) (domain.HistoryEntry, error) {
	parts := strings.SplitN(line, "\x1f", 4)
	if len(parts) != 4 {
		return domain.HistoryEntry{}, fmt.Errorf("unexpected log line: %q", line)
	}

	epoch, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("failed to parse commit timestamp: %w", err)
	}

	return domain.HistoryEntry{
		Hash:      parts[0],
		ShortHash: domain.ShortHashOf(parts[0]),
		Author:    parts[1],
		Timestamp: time.Unix(epoch, 0),
		Message:   parts[3],
	}, nil
}

// hasNoCommits reports whether HEAD resolves to nothing yet
func hasNoCommits(ctx context.Context, path string) (bool, error) {
	if _, err := run(ctx, path, "rev-parse", "--verify", "HEAD"); err != nil {
		return true, nil
	}
	return false, nil
}

// CommitFiles lists the paths a capture touched relative to its parent.
// diff-tree without --root yields nothing for the first capture in history,
// which matches the contract: a parentless capture has no file entries.
func CommitFiles(ctx context.Context, path, hash string) ([]string, error) {
	output, err := run(ctx, path, "diff-tree", "--no-commit-id", "--name-only", "-r", hash)
	if err != nil {
		return nil, fmt.Errorf("git diff-tree failed: %w", err)
	}
	return lines(output), nil
}

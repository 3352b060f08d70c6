package git

import (
	"context"
	"time"

	"timeline/domain"
	gitpkg "timeline/git"
	"timeline/ports"
)

// CLIEngine implements ports.Engine by wrapping the git package for a
// single repository path
type CLIEngine struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.Engine = (*CLIEngine)(nil)

// NewCLIEngine creates an engine bound to the given repository path
func NewCLIEngine(path string) *CLIEngine {
	return &CLIEngine{path: path}
}

// Path returns the repository path the engine is bound to
func (e *CLIEngine) Path() string {
	return e.path
}

// StatusReader methods

func (e *CLIEngine) IsRepository(ctx context.Context) (bool, string) {
	return gitpkg.IsRepository(ctx, e.path)
}

func (e *CLIEngine) CurrentBranch(ctx context.Context) (string, error) {
	return gitpkg.CurrentBranch(ctx, e.path)
}

func (e *CLIEngine) Changes(ctx context.Context) (domain.ChangeSet, error) {
	return gitpkg.Changes(ctx, e.path)
}

func (e *CLIEngine) AheadBehind(ctx context.Context) (int, int, error) {
	return gitpkg.AheadBehind(ctx, e.path)
}

func (e *CLIEngine) HasConflicts(ctx context.Context) (bool, error) {
	return gitpkg.HasConflicts(ctx, e.path)
}

// Historian methods

func (e *CLIEngine) Log(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	return gitpkg.Log(ctx, e.path, limit)
}

func (e *CLIEngine) LogSince(ctx context.Context, since time.Time) ([]domain.HistoryEntry, error) {
	return gitpkg.LogSince(ctx, e.path, since)
}

func (e *CLIEngine) CommitFiles(ctx context.Context, hash string) ([]string, error) {
	return gitpkg.CommitFiles(ctx, e.path, hash)
}

// TreeMutator methods

func (e *CLIEngine) Initialize(ctx context.Context) error {
	return gitpkg.Initialize(ctx, e.path)
}

func (e *CLIEngine) StageAll(ctx context.Context) error {
	return gitpkg.StageAll(ctx, e.path)
}

func (e *CLIEngine) Commit(ctx context.Context, message string) (string, error) {
	return gitpkg.Commit(ctx, e.path, message)
}

func (e *CLIEngine) Checkout(ctx context.Context, ref string) error {
	return gitpkg.Checkout(ctx, e.path, ref)
}

// RemoteSyncer methods

func (e *CLIEngine) Remotes(ctx context.Context) ([]string, error) {
	return gitpkg.Remotes(ctx, e.path)
}

func (e *CLIEngine) AddRemote(ctx context.Context, name, url string) error {
	return gitpkg.AddRemote(ctx, e.path, name, url)
}

func (e *CLIEngine) Fetch(ctx context.Context, remote string) error {
	return gitpkg.Fetch(ctx, e.path, remote)
}

func (e *CLIEngine) HasRemoteBranch(ctx context.Context, remote, branch string) (bool, error) {
	return gitpkg.HasRemoteBranch(ctx, e.path, remote, branch)
}

func (e *CLIEngine) Pull(ctx context.Context, remote, branch string) error {
	return gitpkg.Pull(ctx, e.path, remote, branch)
}

func (e *CLIEngine) Push(ctx context.Context, remote string) error {
	return gitpkg.Push(ctx, e.path, remote)
}

// BranchManager methods

func (e *CLIEngine) Branches(ctx context.Context) ([]string, error) {
	return gitpkg.Branches(ctx, e.path)
}

func (e *CLIEngine) CreateBranch(ctx context.Context, name string) error {
	return gitpkg.CreateBranch(ctx, e.path, name)
}

func (e *CLIEngine) Merge(ctx context.Context, branch string) error {
	return gitpkg.Merge(ctx, e.path, branch)
}

func (e *CLIEngine) DeleteBranch(ctx context.Context, name string, force bool) error {
	return gitpkg.DeleteBranch(ctx, e.path, name, force)
}

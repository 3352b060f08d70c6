package services

import (
	"context"
	"time"

	"timeline/domain"
	"timeline/ports"
)

// fakeEngine is a configurable in-memory ports.Engine for service tests.
// Fields preset the answers; the calls slice records every mutation so
// tests can assert what was (and was not) attempted.
type fakeEngine struct {
	isRepo         bool
	root           string
	branch         string
	branchErr      error
	changes        domain.ChangeSet
	changesErr     error
	ahead          int
	behind         int
	aheadErr       error
	conflicted     bool
	remotes        []string
	remotesErr     error
	remoteBranches []string
	branches       []string
	log            []domain.HistoryEntry
	commitFiles    map[string][]string

	commitHash  string
	commitErr   error
	checkoutErr error
	mergeErr    error
	pullErr     error
	pushErr     error
	fetchErr    error
	deleteErr   error
	createErr   error

	calls []string
}

var _ ports.Engine = (*fakeEngine)(nil)

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		isRepo:      true,
		branch:      "main",
		branches:    []string{"main"},
		commitHash:  "a1b2c3d4e5f6a7b8",
		commitFiles: map[string][]string{},
	}
}

func (f *fakeEngine) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeEngine) called(call string) bool {
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeEngine) IsRepository(ctx context.Context) (bool, string) {
	return f.isRepo, f.root
}

func (f *fakeEngine) CurrentBranch(ctx context.Context) (string, error) {
	return f.branch, f.branchErr
}

func (f *fakeEngine) Changes(ctx context.Context) (domain.ChangeSet, error) {
	return f.changes, f.changesErr
}

func (f *fakeEngine) AheadBehind(ctx context.Context) (int, int, error) {
	if f.aheadErr != nil {
		return 0, 0, f.aheadErr
	}
	return f.ahead, f.behind, nil
}

func (f *fakeEngine) HasConflicts(ctx context.Context) (bool, error) {
	return f.conflicted, nil
}

func (f *fakeEngine) Log(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit < len(f.log) {
		return f.log[:limit], nil
	}
	return f.log, nil
}

func (f *fakeEngine) LogSince(ctx context.Context, since time.Time) ([]domain.HistoryEntry, error) {
	return f.log, nil
}

func (f *fakeEngine) CommitFiles(ctx context.Context, hash string) ([]string, error) {
	return f.commitFiles[hash], nil
}

func (f *fakeEngine) Initialize(ctx context.Context) error {
	f.record("initialize")
	return nil
}

func (f *fakeEngine) StageAll(ctx context.Context) error {
	f.record("stage")
	return nil
}

func (f *fakeEngine) Commit(ctx context.Context, message string) (string, error) {
	f.record("commit " + message)
	return f.commitHash, f.commitErr
}

func (f *fakeEngine) Checkout(ctx context.Context, ref string) error {
	f.record("checkout " + ref)
	if f.checkoutErr != nil {
		return f.checkoutErr
	}
	f.branch = ref
	return nil
}

func (f *fakeEngine) Remotes(ctx context.Context) ([]string, error) {
	return f.remotes, f.remotesErr
}

func (f *fakeEngine) AddRemote(ctx context.Context, name, url string) error {
	f.record("add-remote " + name)
	f.remotes = append(f.remotes, name)
	return nil
}

func (f *fakeEngine) Fetch(ctx context.Context, remote string) error {
	f.record("fetch " + remote)
	return f.fetchErr
}

func (f *fakeEngine) HasRemoteBranch(ctx context.Context, remote, branch string) (bool, error) {
	for _, b := range f.remoteBranches {
		if b == branch {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEngine) Pull(ctx context.Context, remote, branch string) error {
	if branch != "" {
		f.record("pull " + remote + " " + branch)
	} else {
		f.record("pull " + remote)
	}
	return f.pullErr
}

func (f *fakeEngine) Push(ctx context.Context, remote string) error {
	f.record("push " + remote)
	return f.pushErr
}

func (f *fakeEngine) Branches(ctx context.Context) ([]string, error) {
	return f.branches, nil
}

func (f *fakeEngine) CreateBranch(ctx context.Context, name string) error {
	f.record("create-branch " + name)
	if f.createErr != nil {
		return f.createErr
	}
	f.branches = append(f.branches, name)
	f.branch = name
	return nil
}

func (f *fakeEngine) Merge(ctx context.Context, branch string) error {
	f.record("merge " + branch)
	return f.mergeErr
}

func (f *fakeEngine) DeleteBranch(ctx context.Context, name string, force bool) error {
	if force {
		f.record("delete-branch-force " + name)
	} else {
		f.record("delete-branch " + name)
	}
	return f.deleteErr
}

package ports

import (
	"context"
	"time"

	"timeline/domain"
)

// StatusReader answers read-only questions about the working tree.
// Reads carry no ordering hazard between themselves and may run concurrently.
type StatusReader interface {
	// IsRepository reports whether the path is inside a repository,
	// and the repository root when it is.
	IsRepository(ctx context.Context) (bool, string)
	CurrentBranch(ctx context.Context) (string, error)
	Changes(ctx context.Context) (domain.ChangeSet, error)
	// AheadBehind returns domain.ErrNoUpstream when no tracking branch exists
	AheadBehind(ctx context.Context) (ahead, behind int, err error)
	HasConflicts(ctx context.Context) (bool, error)
}

// Historian retrieves capture history
type Historian interface {
	Log(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	LogSince(ctx context.Context, since time.Time) ([]domain.HistoryEntry, error)
	// CommitFiles lists the paths a capture touched relative to its parent.
	// A parentless capture yields an empty list, not an error.
	CommitFiles(ctx context.Context, hash string) ([]string, error)
}

// TreeMutator changes the working tree or index
type TreeMutator interface {
	Initialize(ctx context.Context) error
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) (string, error)
	Checkout(ctx context.Context, ref string) error
}

// RemoteSyncer talks to the configured remote
type RemoteSyncer interface {
	Remotes(ctx context.Context) ([]string, error)
	AddRemote(ctx context.Context, name, url string) error
	Fetch(ctx context.Context, remote string) error
	// HasRemoteBranch reports whether the remote-tracking ref for the
	// branch exists after a fetch
	HasRemoteBranch(ctx context.Context, remote, branch string) (bool, error)
	// Pull returns domain.ErrMergeConflict when the merge stops on
	// conflicts. An empty branch pulls the tracking branch; a branch with
	// no tracking ref must be named explicitly.
	Pull(ctx context.Context, remote, branch string) error
	// Push returns domain.ErrPushRejected when the remote has diverged
	Push(ctx context.Context, remote string) error
}

// BranchManager handles experiment branch lifecycle
type BranchManager interface {
	Branches(ctx context.Context) ([]string, error)
	CreateBranch(ctx context.Context, name string) error
	// Merge returns domain.ErrMergeConflict when the merge stops on conflicts
	Merge(ctx context.Context, branch string) error
	DeleteBranch(ctx context.Context, name string, force bool) error
}

// Engine is the composite interface over the underlying version-control tool
type Engine interface {
	BranchManager
	Historian
	RemoteSyncer
	StatusReader
	TreeMutator
}

package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"timeline/domain"
	"timeline/logging"
	"timeline/ports"
	"timeline/state"
)

// Config carries the tunable knobs of a Timeline instance
type Config struct {
	RemoteName      string
	DefaultBranches []string // preference order for the default branch
	TopFiles        int      // most-changed files kept in a narrative
}

// DefaultConfig returns the configuration used when settings are absent
func DefaultConfig() Config {
	return Config{
		RemoteName:      "origin",
		DefaultBranches: []string{"main", "master"},
		TopFiles:        5,
	}
}

// Timeline exposes the friendly operation surface over a single repository.
// Mutating operations are serialized: an in-process mutex guards this
// instance and an optional cross-process lock guards the working tree, so
// the auto-backup scheduler is just another caller with no special rights.
type Timeline struct {
	engine ports.Engine
	cfg    Config
	guard  *state.RepoLock
	mu     sync.Mutex
}

// NewTimeline creates a Timeline over the given engine
func NewTimeline(engine ports.Engine, cfg Config) *Timeline {
	if cfg.RemoteName == "" {
		cfg.RemoteName = "origin"
	}
	if len(cfg.DefaultBranches) == 0 {
		cfg.DefaultBranches = []string{"main", "master"}
	}
	if cfg.TopFiles <= 0 {
		cfg.TopFiles = 5
	}
	return &Timeline{engine: engine, cfg: cfg}
}

// WithRepoLock attaches a cross-process mutation lock to the timeline
func (t *Timeline) WithRepoLock(lock *state.RepoLock) *Timeline {
	t.guard = lock
	return t
}

// withMutation runs fn under the mutation discipline. The mutex serializes
// callers inside this process; the repo lock serializes against other
// processes sharing the working tree.
func (t *Timeline) withMutation(fn func() domain.Result) domain.Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.guard != nil {
		if err := t.guard.Acquire(); err != nil {
			return toolFailure(err)
		}
		defer func() {
			if err := t.guard.Release(); err != nil {
				logging.Logger.Warn("Failed to release repo lock", "error", err)
			}
		}()
	}

	return fn()
}

func toolFailure(err error) domain.Result {
	return domain.Fail(domain.KindUnderlyingToolFailure, err.Error())
}

// Capture commits every pending change with the given message
func (t *Timeline) Capture(ctx context.Context, message string) domain.Result {
	return t.withMutation(func() domain.Result {
		changes, err := t.engine.Changes(ctx)
		if err != nil {
			return toolFailure(err)
		}
		if !changes.HasChanges() {
			return domain.Fail(domain.KindNothingToCapture,
				"Nothing to capture. Your timeline is already up to date.")
		}

		if err := t.engine.StageAll(ctx); err != nil {
			return toolFailure(err)
		}
		hash, err := t.engine.Commit(ctx, message)
		if err != nil {
			return toolFailure(err)
		}

		short := domain.ShortHashOf(hash)
		r := domain.OK(fmt.Sprintf("Captured %d %s (%s).",
			changes.Total(), plural(changes.Total(), "change", "changes"), short))
		r.CommitID = short
		return r
	})
}

// Update fetches from the linked remote and merges new captures in
func (t *Timeline) Update(ctx context.Context) domain.Result {
	return t.withMutation(func() domain.Result {
		if r, ok := t.requireRemote(ctx); !ok {
			return r
		}

		if err := t.engine.Fetch(ctx, t.cfg.RemoteName); err != nil {
			return toolFailure(err)
		}

		// Behind count measured after the fetch is the number of captures
		// an eventual merge will bring in.
		_, behind, err := t.engine.AheadBehind(ctx)
		hasUpstream := true
		if err != nil {
			if !errors.Is(err, domain.ErrNoUpstream) {
				return toolFailure(err)
			}
			hasUpstream = false
		}

		if hasUpstream && behind == 0 {
			return domain.OK("Already up to date.")
		}

		// With no tracking branch a bare pull is refused by git, so the
		// current branch is pulled by name, and only when the backup
		// actually has it.
		branch := ""
		if !hasUpstream {
			current, err := t.engine.CurrentBranch(ctx)
			if err != nil {
				return toolFailure(err)
			}
			exists, err := t.engine.HasRemoteBranch(ctx, t.cfg.RemoteName, current)
			if err != nil {
				return toolFailure(err)
			}
			if !exists {
				return domain.OK("Already up to date.")
			}
			branch = current
		}

		if err := t.engine.Pull(ctx, t.cfg.RemoteName, branch); err != nil {
			if errors.Is(err, domain.ErrMergeConflict) {
				return domain.Fail(domain.KindUpdateConflict,
					"The update ran into conflicting changes. Resolve the conflicts, then capture.")
			}
			return toolFailure(err)
		}

		if !hasUpstream {
			return domain.OK("Updated from backup.")
		}
		r := domain.OK(fmt.Sprintf("Updated, received %d new %s.",
			behind, plural(behind, "capture", "captures")))
		r.Received = behind
		return r
	})
}

// Backup pushes local captures to the linked remote
func (t *Timeline) Backup(ctx context.Context) domain.Result {
	return t.withMutation(func() domain.Result {
		if r, ok := t.requireRemote(ctx); !ok {
			return r
		}

		ahead, _, err := t.engine.AheadBehind(ctx)
		hasUpstream := true
		if err != nil {
			if !errors.Is(err, domain.ErrNoUpstream) {
				return toolFailure(err)
			}
			// First backup of a branch: nothing tracks the remote yet,
			// push anyway and let it set the upstream.
			hasUpstream = false
		}

		if hasUpstream && ahead == 0 {
			return domain.OK("Everything is already backed up.")
		}

		if err := t.engine.Push(ctx, t.cfg.RemoteName); err != nil {
			if errors.Is(err, domain.ErrPushRejected) {
				return domain.Fail(domain.KindBackupRejected,
					"The backup was rejected. The backup location has newer captures. Update first, then back up again.")
			}
			return toolFailure(err)
		}

		if !hasUpstream {
			return domain.OK("Backed up.")
		}
		r := domain.OK(fmt.Sprintf("Backed up %d %s.",
			ahead, plural(ahead, "capture", "captures")))
		r.Sent = ahead
		return r
	})
}

// requireRemote fails with NoRemoteConfigured before any network call is
// attempted when no remote is linked
func (t *Timeline) requireRemote(ctx context.Context) (domain.Result, bool) {
	remotes, err := t.engine.Remotes(ctx)
	if err != nil {
		return toolFailure(err), false
	}
	if len(remotes) == 0 {
		return domain.Fail(domain.KindNoRemoteConfigured,
			"No backup location is linked yet. Link one first."), false
	}
	return domain.Result{}, true
}

// GoTo checks out the given reference. A dirty working tree refuses the
// move so nothing is silently lost.
func (t *Timeline) GoTo(ctx context.Context, ref string) domain.Result {
	return t.withMutation(func() domain.Result {
		changes, err := t.engine.Changes(ctx)
		if err != nil {
			return toolFailure(err)
		}
		if changes.HasChanges() {
			return domain.Fail(domain.KindUncommittedChanges,
				"You have uncaptured changes. Capture them before traveling the timeline.")
		}

		if err := t.engine.Checkout(ctx, ref); err != nil {
			return toolFailure(err)
		}
		return domain.OK(fmt.Sprintf("Traveled to %s.", ref))
	})
}

// Initialize starts a new timeline in place
func (t *Timeline) Initialize(ctx context.Context) domain.Result {
	return t.withMutation(func() domain.Result {
		if err := t.engine.Initialize(ctx); err != nil {
			return toolFailure(err)
		}
		return domain.OK("Timeline started. Capture your first change whenever you're ready.")
	})
}

// LinkRemote registers the backup location under the configured remote name
func (t *Timeline) LinkRemote(ctx context.Context, url string) domain.Result {
	return t.withMutation(func() domain.Result {
		remotes, err := t.engine.Remotes(ctx)
		if err != nil {
			return toolFailure(err)
		}
		for _, r := range remotes {
			if r == t.cfg.RemoteName {
				return domain.Fail(domain.KindRemoteAlreadyExists,
					"A backup location is already linked.")
			}
		}

		if err := t.engine.AddRemote(ctx, t.cfg.RemoteName, url); err != nil {
			return toolFailure(err)
		}
		return domain.OK("Backup location linked.")
	})
}

// Changes returns the current change set
func (t *Timeline) Changes(ctx context.Context) (domain.ChangeSet, error) {
	return t.engine.Changes(ctx)
}

// History returns up to limit captures, newest first
func (t *Timeline) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	return t.engine.Log(ctx, limit)
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

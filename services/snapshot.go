package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"timeline/domain"
	"timeline/logging"
)

// StatusSnapshot recomputes the timeline state from scratch. Never cached:
// another process may be writing to the same tree between queries. The
// individual reads have no ordering hazard between themselves, so they run
// concurrently.
func (t *Timeline) StatusSnapshot(ctx context.Context) (domain.StatusSnapshot, domain.ChangeSet, error) {
	isRepo, _ := t.engine.IsRepository(ctx)
	if !isRepo {
		return domain.StatusSnapshot{}, domain.ChangeSet{}, nil
	}

	snap := domain.StatusSnapshot{IsRepository: true}
	var changes domain.ChangeSet

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		current, err := t.engine.CurrentBranch(ctx)
		if err != nil {
			logging.Logger.Debug("Failed to resolve current branch", "error", err)
			// Non-fatal - a repository with no commits has no branch yet
			return nil
		}
		def, err := t.defaultBranch(ctx)
		if err != nil {
			return err
		}
		if current != def {
			snap.Experiment = current
		}
		return nil
	})

	g.Go(func() error {
		cs, err := t.engine.Changes(ctx)
		if err != nil {
			return err
		}
		changes = cs
		snap.HasChanges = cs.HasChanges()
		return nil
	})

	g.Go(func() error {
		ahead, behind, err := t.engine.AheadBehind(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrNoUpstream) {
				return nil
			}
			logging.Logger.Debug("Failed to get ahead/behind", "error", err)
			return nil
		}
		snap.Ahead = ahead
		snap.Behind = behind
		return nil
	})

	g.Go(func() error {
		conflicted, err := t.engine.HasConflicts(ctx)
		if err != nil {
			return err
		}
		snap.HasConflicts = conflicted
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.StatusSnapshot{}, domain.ChangeSet{}, err
	}

	return snap, changes, nil
}

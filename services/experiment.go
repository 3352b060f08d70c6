package services

import (
	"context"
	"errors"
	"fmt"

	"timeline/domain"
	"timeline/git"
)

// ExperimentBegin creates a new experiment branch and switches to it.
// The name is sanitized to lowercase letters, digits and hyphens first.
func (t *Timeline) ExperimentBegin(ctx context.Context, name string) domain.Result {
	clean, err := git.SanitizeExperimentName(name)
	if err != nil {
		return toolFailure(err)
	}

	return t.withMutation(func() domain.Result {
		if err := t.engine.CreateBranch(ctx, clean); err != nil {
			return toolFailure(err)
		}
		r := domain.OK(fmt.Sprintf("Started experiment %q.", clean))
		r.Experiment = clean
		return r
	})
}

// Keep merges the current experiment into the default branch and deletes it
func (t *Timeline) Keep(ctx context.Context) domain.Result {
	return t.withMutation(func() domain.Result {
		current, def, r, ok := t.experimentAndDefault(ctx)
		if !ok {
			return r
		}

		if err := t.engine.Checkout(ctx, def); err != nil {
			return toolFailure(err)
		}
		if err := t.engine.Merge(ctx, current); err != nil {
			if errors.Is(err, domain.ErrMergeConflict) {
				// Conflict state is left in place for the operator;
				// the experiment branch survives.
				return domain.Fail(domain.KindMergeConflict,
					fmt.Sprintf("Keeping %q ran into conflicting changes. Resolve the conflicts, then capture.", current))
			}
			return toolFailure(err)
		}
		if err := t.engine.DeleteBranch(ctx, current, false); err != nil {
			return toolFailure(err)
		}

		res := domain.OK(fmt.Sprintf("Kept experiment %q, merged into %s.", current, def))
		res.Experiment = current
		return res
	})
}

// Discard deletes the current experiment without merging. Unmerged changes
// are lost; this is intentionally destructive.
func (t *Timeline) Discard(ctx context.Context) domain.Result {
	return t.withMutation(func() domain.Result {
		current, def, r, ok := t.experimentAndDefault(ctx)
		if !ok {
			return r
		}

		if err := t.engine.Checkout(ctx, def); err != nil {
			return toolFailure(err)
		}
		if err := t.engine.DeleteBranch(ctx, current, true); err != nil {
			return toolFailure(err)
		}

		res := domain.OK(fmt.Sprintf("Discarded experiment %q.", current))
		res.Experiment = current
		return res
	})
}

// experimentAndDefault resolves the current branch and the default branch,
// failing with AlreadyOnMain when they coincide
func (t *Timeline) experimentAndDefault(ctx context.Context) (current, def string, r domain.Result, ok bool) {
	current, err := t.engine.CurrentBranch(ctx)
	if err != nil {
		return "", "", toolFailure(err), false
	}

	def, err = t.defaultBranch(ctx)
	if err != nil {
		return "", "", toolFailure(err), false
	}

	if current == def {
		return "", "", domain.Fail(domain.KindAlreadyOnMain,
			"You're already on the main timeline."), false
	}
	return current, def, domain.Result{}, true
}

// defaultBranch picks the first configured default name that exists as a
// branch, falling back to the first configured name
func (t *Timeline) defaultBranch(ctx context.Context) (string, error) {
	branches, err := t.engine.Branches(ctx)
	if err != nil {
		return "", err
	}

	existing := make(map[string]bool, len(branches))
	for _, b := range branches {
		existing[b] = true
	}

	for _, candidate := range t.cfg.DefaultBranches {
		if existing[candidate] {
			return candidate, nil
		}
	}
	return t.cfg.DefaultBranches[0], nil
}

package domain

// ChangeSet classifies every pending path in the working tree.
// A path appears in exactly one of the three sets: a staged path that was
// modified again afterwards counts as unstaged, never twice.
type ChangeSet struct {
	Staged    []string
	Unstaged  []string
	Untracked []string
}

// Total returns the number of pending paths across all three sets
func (c ChangeSet) Total() int {
	return len(c.Staged) + len(c.Unstaged) + len(c.Untracked)
}

// HasChanges reports whether anything is waiting to be captured
func (c ChangeSet) HasChanges() bool {
	return c.Total() > 0
}

package domain

// StatusSnapshot is the current state of a timeline, recomputed fresh on
// every query. The engine's state can change between queries (another
// process may be writing to the same tree), so snapshots are never cached.
type StatusSnapshot struct {
	IsRepository bool
	Experiment   string // current branch name, empty when on the default branch
	HasChanges   bool
	Ahead        int
	Behind       int
	HasConflicts bool
}

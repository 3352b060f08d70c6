package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline/domain"
)

func TestProjectStatus_NotARepository(t *testing.T) {
	tokens := ProjectStatus(domain.StatusSnapshot{}, domain.ChangeSet{})

	assert.Equal(t, []string{GlyphNoTimeline}, tokens)
}

func TestProjectStatus_SyncedIdleRepository(t *testing.T) {
	snap := domain.StatusSnapshot{IsRepository: true}

	tokens := ProjectStatus(snap, domain.ChangeSet{})

	assert.Equal(t, []string{GlyphBase, GlyphSynced}, tokens)
}

func TestProjectStatus_TokenOrder(t *testing.T) {
	snap := domain.StatusSnapshot{
		IsRepository: true,
		Experiment:   "try-layout",
		HasChanges:   true,
		Ahead:        2,
		Behind:       1,
	}
	changes := domain.ChangeSet{
		Unstaged:  []string{"a.md", "b.md"},
		Untracked: []string{"c.md"},
	}

	tokens := ProjectStatus(snap, changes)

	assert.Equal(t, []string{
		GlyphBase,
		GlyphExperiment + " try-layout",
		GlyphChanges + " 3",
		GlyphAhead + "2",
		GlyphBehind + "1",
	}, tokens)
}

func TestProjectStatus_NoSyncedMarkerWhenBusy(t *testing.T) {
	snap := domain.StatusSnapshot{IsRepository: true, Ahead: 2}

	tokens := ProjectStatus(snap, domain.ChangeSet{})

	assert.Equal(t, []string{GlyphBase, GlyphAhead + "2"}, tokens)
	assert.NotContains(t, tokens, GlyphSynced)
}

func TestProjectStatus_ExperimentAloneStillSynced(t *testing.T) {
	snap := domain.StatusSnapshot{IsRepository: true, Experiment: "try-layout"}

	tokens := ProjectStatus(snap, domain.ChangeSet{})

	// The experiment marker does not suppress the synced marker
	assert.Equal(t, []string{GlyphBase, GlyphExperiment + " try-layout", GlyphSynced}, tokens)
}

func TestRenderStatusLine(t *testing.T) {
	line := RenderStatusLine([]string{GlyphBase, GlyphSynced})

	assert.Equal(t, GlyphBase+"  "+GlyphSynced, line)
}

func TestStatusSnapshot_NotARepository(t *testing.T) {
	engine := newFakeEngine()
	engine.isRepo = false
	tl := NewTimeline(engine, DefaultConfig())

	snap, changes, err := tl.StatusSnapshot(context.Background())

	require.NoError(t, err)
	assert.False(t, snap.IsRepository)
	assert.False(t, changes.HasChanges())
}

func TestStatusSnapshot_OnExperiment(t *testing.T) {
	engine := newFakeEngine()
	engine.branch = "try-layout"
	engine.branches = []string{"main", "try-layout"}
	engine.changes = domain.ChangeSet{Unstaged: []string{"a.md"}}
	engine.ahead = 1
	engine.behind = 2
	tl := NewTimeline(engine, DefaultConfig())

	snap, changes, err := tl.StatusSnapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.IsRepository)
	assert.Equal(t, "try-layout", snap.Experiment)
	assert.True(t, snap.HasChanges)
	assert.Equal(t, 1, snap.Ahead)
	assert.Equal(t, 2, snap.Behind)
	assert.Equal(t, 1, changes.Total())
}

func TestStatusSnapshot_OnDefaultBranch(t *testing.T) {
	engine := newFakeEngine()
	tl := NewTimeline(engine, DefaultConfig())

	snap, _, err := tl.StatusSnapshot(context.Background())

	require.NoError(t, err)
	// The default branch is not an experiment
	assert.Empty(t, snap.Experiment)
}

func TestStatusSnapshot_NoUpstreamIsNotAnError(t *testing.T) {
	engine := newFakeEngine()
	engine.aheadErr = domain.ErrNoUpstream
	tl := NewTimeline(engine, DefaultConfig())

	snap, _, err := tl.StatusSnapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, snap.Ahead)
	assert.Equal(t, 0, snap.Behind)
}

func TestStatusSnapshot_Conflicts(t *testing.T) {
	engine := newFakeEngine()
	engine.conflicted = true
	tl := NewTimeline(engine, DefaultConfig())

	snap, _, err := tl.StatusSnapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.HasConflicts)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline/domain"
	"timeline/ports"
)

// fakeVaults is an in-memory ports.VaultRepository for scheduler tests
type fakeVaults struct {
	vaults  []domain.Vault
	touched []string
}

var _ ports.VaultRepository = (*fakeVaults)(nil)

func (f *fakeVaults) Add(ctx context.Context, vault domain.Vault) error { return nil }

func (f *fakeVaults) Get(ctx context.Context, name string) (domain.Vault, error) {
	return domain.Vault{}, nil
}

func (f *fakeVaults) List(ctx context.Context) ([]domain.Vault, error) {
	return f.vaults, nil
}

func (f *fakeVaults) Remove(ctx context.Context, name string) error { return nil }

func (f *fakeVaults) SetAutoBackup(ctx context.Context, name string, enabled bool) error {
	return nil
}

func (f *fakeVaults) TouchCapture(ctx context.Context, name string, at time.Time) error {
	f.touched = append(f.touched, name)
	return nil
}

func TestRunOnce_SkipsVaultsWithoutAutoBackup(t *testing.T) {
	vaults := &fakeVaults{vaults: []domain.Vault{
		{Name: "work", Path: "/vaults/work", AutoBackup: false},
	}}
	engines := map[string]*fakeEngine{}
	scheduler := NewBackupScheduler(vaults, func(path string) *Timeline {
		engine := newFakeEngine()
		engines[path] = engine
		return NewTimeline(engine, DefaultConfig())
	}, time.Minute)

	scheduler.RunOnce(context.Background())

	assert.Empty(t, engines)
	assert.Empty(t, vaults.touched)
}

func TestRunOnce_CapturesAndBacksUp(t *testing.T) {
	vaults := &fakeVaults{vaults: []domain.Vault{
		{Name: "notes", Path: "/vaults/notes", AutoBackup: true},
	}}
	engine := newFakeEngine()
	engine.changes = domain.ChangeSet{Unstaged: []string{"a.md"}}
	engine.remotes = []string{"origin"}
	engine.ahead = 1
	scheduler := NewBackupScheduler(vaults, func(path string) *Timeline {
		return NewTimeline(engine, DefaultConfig())
	}, time.Minute)

	scheduler.RunOnce(context.Background())

	assert.True(t, engine.called("stage"))
	assert.True(t, engine.called("push origin"))
	assert.Equal(t, []string{"notes"}, vaults.touched)
}

func TestRunOnce_QuietVaultStillBacksUp(t *testing.T) {
	vaults := &fakeVaults{vaults: []domain.Vault{
		{Name: "notes", Path: "/vaults/notes", AutoBackup: true},
	}}
	engine := newFakeEngine()
	engine.remotes = []string{"origin"}
	engine.ahead = 2
	scheduler := NewBackupScheduler(vaults, func(path string) *Timeline {
		return NewTimeline(engine, DefaultConfig())
	}, time.Minute)

	scheduler.RunOnce(context.Background())

	// Nothing to capture, but earlier manual captures still get pushed
	assert.False(t, engine.called("stage"))
	assert.True(t, engine.called("push origin"))
	assert.Empty(t, vaults.touched)
}

func TestRunOnce_NoRemoteIsTolerated(t *testing.T) {
	vaults := &fakeVaults{vaults: []domain.Vault{
		{Name: "local-only", Path: "/vaults/local", AutoBackup: true},
	}}
	engine := newFakeEngine()
	engine.changes = domain.ChangeSet{Unstaged: []string{"a.md"}}
	scheduler := NewBackupScheduler(vaults, func(path string) *Timeline {
		return NewTimeline(engine, DefaultConfig())
	}, time.Minute)

	scheduler.RunOnce(context.Background())

	// Capture still happens; the missing remote only skips the backup
	assert.True(t, engine.called("stage"))
	assert.Equal(t, []string{"local-only"}, vaults.touched)
}

func TestTimelineFor_ReusesInstancePerPath(t *testing.T) {
	built := 0
	scheduler := NewBackupScheduler(&fakeVaults{}, func(path string) *Timeline {
		built++
		return NewTimeline(newFakeEngine(), DefaultConfig())
	}, time.Minute)

	first := scheduler.timelineFor("/vaults/notes")
	second := scheduler.timelineFor("/vaults/notes")
	other := scheduler.timelineFor("/vaults/work")

	require.Same(t, first, second)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, built)
}

func TestStartStop(t *testing.T) {
	scheduler := NewBackupScheduler(&fakeVaults{}, func(path string) *Timeline {
		return NewTimeline(newFakeEngine(), DefaultConfig())
	}, time.Hour)

	scheduler.Start(context.Background())
	scheduler.Stop()

	// A second Stop is a no-op, not a panic
	scheduler.Stop()
}

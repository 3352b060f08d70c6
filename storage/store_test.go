package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAddAndGetVault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.AddVault(ctx, VaultRecord{
		Name:      "notes",
		Path:      "/vaults/notes",
		RemoteURL: "git@example.com:me/notes.git",
	})
	require.NoError(t, err)

	record, err := store.GetVault(ctx, "notes")
	require.NoError(t, err)
	assert.Equal(t, "notes", record.Name)
	assert.Equal(t, "/vaults/notes", record.Path)
	assert.Equal(t, "git@example.com:me/notes.git", record.RemoteURL)
	assert.False(t, record.AutoBackup)
	assert.Nil(t, record.LastCaptureAt)
}

func TestGetVault_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetVault(context.Background(), "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAddVault_DuplicateName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddVault(ctx, VaultRecord{Name: "notes", Path: "/a"}))
	err := store.AddVault(ctx, VaultRecord{Name: "notes", Path: "/b"})

	require.Error(t, err)
}

func TestListVaults_OrderedByName(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddVault(ctx, VaultRecord{Name: "work", Path: "/w"}))
	require.NoError(t, store.AddVault(ctx, VaultRecord{Name: "journal", Path: "/j"}))

	records, err := store.ListVaults(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "journal", records[0].Name)
	assert.Equal(t, "work", records[1].Name)
}

func TestRemoveVault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddVault(ctx, VaultRecord{Name: "notes", Path: "/n"}))
	require.NoError(t, store.RemoveVault(ctx, "notes"))

	records, err := store.ListVaults(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSetAutoBackup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddVault(ctx, VaultRecord{Name: "notes", Path: "/n"}))
	require.NoError(t, store.SetAutoBackup(ctx, "notes", true))

	record, err := store.GetVault(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, record.AutoBackup)
}

func TestSetAutoBackup_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.SetAutoBackup(context.Background(), "missing", true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTouchCapture(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddVault(ctx, VaultRecord{Name: "notes", Path: "/n"}))

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.TouchCapture(ctx, "notes", at))

	record, err := store.GetVault(ctx, "notes")
	require.NoError(t, err)
	require.NotNil(t, record.LastCaptureAt)
	assert.WithinDuration(t, at, *record.LastCaptureAt, time.Second)
}

func TestTouchCapture_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.TouchCapture(context.Background(), "missing", time.Now())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

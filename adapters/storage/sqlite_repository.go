package storage

import (
	"context"
	"time"

	"timeline/domain"
	"timeline/ports"
	"timeline/storage"
)

// SQLiteRepository implements ports.VaultRepository on top of the gorm store
type SQLiteRepository struct {
	store *storage.Store
}

// Verify interface compliance at compile time
var _ ports.VaultRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository creates a vault repository backed by the given store
func NewSQLiteRepository(store *storage.Store) *SQLiteRepository {
	return &SQLiteRepository{store: store}
}

// Add implements VaultRepository.Add
func (r *SQLiteRepository) Add(ctx context.Context, vault domain.Vault) error {
	return r.store.AddVault(ctx, domainToRecord(vault))
}

// Get implements VaultRepository.Get
func (r *SQLiteRepository) Get(ctx context.Context, name string) (domain.Vault, error) {
	record, err := r.store.GetVault(ctx, name)
	if err != nil {
		return domain.Vault{}, err
	}
	return recordToDomain(record), nil
}

// List implements VaultRepository.List
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Vault, error) {
	records, err := r.store.ListVaults(ctx)
	if err != nil {
		return nil, err
	}
	vaults := make([]domain.Vault, 0, len(records))
	for _, record := range records {
		vaults = append(vaults, recordToDomain(record))
	}
	return vaults, nil
}

// Remove implements VaultRepository.Remove
func (r *SQLiteRepository) Remove(ctx context.Context, name string) error {
	return r.store.RemoveVault(ctx, name)
}

// SetAutoBackup implements VaultRepository.SetAutoBackup
func (r *SQLiteRepository) SetAutoBackup(ctx context.Context, name string, enabled bool) error {
	return r.store.SetAutoBackup(ctx, name, enabled)
}

// TouchCapture implements VaultRepository.TouchCapture
func (r *SQLiteRepository) TouchCapture(ctx context.Context, name string, at time.Time) error {
	return r.store.TouchCapture(ctx, name, at)
}

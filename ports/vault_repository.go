package ports

import (
	"context"
	"time"

	"timeline/domain"
)

// VaultRepository persists the registry of vaults under timeline management
type VaultRepository interface {
	Add(ctx context.Context, vault domain.Vault) error
	Get(ctx context.Context, name string) (domain.Vault, error)
	List(ctx context.Context) ([]domain.Vault, error)
	Remove(ctx context.Context, name string) error
	SetAutoBackup(ctx context.Context, name string, enabled bool) error
	TouchCapture(ctx context.Context, name string, at time.Time) error
}

package storage

import (
	"timeline/domain"
	"timeline/storage"
)

// recordToDomain converts a storage.VaultRecord to domain.Vault
func recordToDomain(record storage.VaultRecord) domain.Vault {
	return domain.Vault{
		AutoBackup:    record.AutoBackup,
		CreatedAt:     record.CreatedAt,
		LastCaptureAt: record.LastCaptureAt,
		Name:          record.Name,
		Path:          record.Path,
		RemoteURL:     record.RemoteURL,
	}
}

// domainToRecord converts a domain.Vault to storage.VaultRecord
func domainToRecord(vault domain.Vault) storage.VaultRecord {
	return storage.VaultRecord{
		AutoBackup:    vault.AutoBackup,
		LastCaptureAt: vault.LastCaptureAt,
		Name:          vault.Name,
		Path:          vault.Path,
		RemoteURL:     vault.RemoteURL,
	}
}

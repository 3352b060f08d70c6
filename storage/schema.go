package storage

import "time"

// VaultRecord is the persisted form of a registered vault
type VaultRecord struct {
	Name          string `gorm:"primaryKey"`
	Path          string `gorm:"not null"`
	RemoteURL     string `gorm:"default:''"`
	AutoBackup    bool   `gorm:"not null;default:false;index:idx_auto_backup"`
	LastCaptureAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName keeps the table name stable regardless of gorm's pluralization
func (VaultRecord) TableName() string {
	return "vaults"
}

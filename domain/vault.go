package domain

import "time"

// Vault is a registered note directory under timeline management
type Vault struct {
	Name          string
	Path          string
	RemoteURL     string
	AutoBackup    bool
	LastCaptureAt *time.Time
	CreatedAt     time.Time
}

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	storageadapter "timeline/adapters/storage"
	"timeline/domain"
	"timeline/ports"
	"timeline/storage"
)

// VaultsCmd manages the registry of vaults under timeline management
type VaultsCmd struct {
	List       VaultsListCmd       `cmd:"" help:"List registered vaults"`
	Add        VaultsAddCmd        `cmd:"" help:"Register a vault"`
	Remove     VaultsRemoveCmd     `cmd:"" help:"Remove a vault from the registry"`
	AutoBackup VaultsAutoBackupCmd `cmd:"" name:"auto-backup" help:"Enable or disable auto-backup for a vault"`
}

// openVaultRepository opens the registry database behind the port
func openVaultRepository(cli *CLI) (ports.VaultRepository, *storage.Store, error) {
	store, err := storage.NewStore(cli.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open registry: %w", err)
	}
	return storageadapter.NewSQLiteRepository(store), store, nil
}

// VaultsListCmd lists registered vaults
type VaultsListCmd struct{}

// Run executes the vaults list command
func (vc *VaultsListCmd) Run(cli *CLI) error {
	repo, store, err := openVaultRepository(cli)
	if err != nil {
		return err
	}
	defer store.Close()

	vaults, err := repo.List(context.Background())
	if err != nil {
		return err
	}

	if len(vaults) == 0 {
		fmt.Println("No vaults registered.")
		return nil
	}

	for _, vault := range vaults {
		backup := "manual backup"
		if vault.AutoBackup {
			backup = "auto backup"
		}
		last := "never captured"
		if vault.LastCaptureAt != nil {
			last = "last capture " + vault.LastCaptureAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("%s  %s  (%s, %s)\n", vault.Name, vault.Path, backup, last)
	}
	return nil
}

// VaultsAddCmd registers a vault
type VaultsAddCmd struct {
	Name       string `arg:"" help:"Vault name"`
	Path       string `arg:"" optional:"" help:"Vault path (defaults to the current directory)" type:"path"`
	RemoteURL  string `help:"Backup location URL recorded for the vault"`
	AutoBackup bool   `help:"Enable auto-backup right away"`
}

// Run executes the vaults add command
func (vc *VaultsAddCmd) Run(cli *CLI) error {
	repo, store, err := openVaultRepository(cli)
	if err != nil {
		return err
	}
	defer store.Close()

	path := vc.Path
	if path == "" {
		path = cli.Vault
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve vault path: %w", err)
	}

	vault := domain.Vault{
		Name:       vc.Name,
		Path:       abs,
		RemoteURL:  vc.RemoteURL,
		AutoBackup: vc.AutoBackup,
	}
	if err := repo.Add(context.Background(), vault); err != nil {
		return err
	}

	fmt.Printf("Registered vault %q at %s.\n", vc.Name, abs)
	return nil
}

// VaultsRemoveCmd removes a vault from the registry
type VaultsRemoveCmd struct {
	Name string `arg:"" help:"Vault name"`
}

// Run executes the vaults remove command
func (vc *VaultsRemoveCmd) Run(cli *CLI) error {
	repo, store, err := openVaultRepository(cli)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := repo.Remove(context.Background(), vc.Name); err != nil {
		return err
	}
	fmt.Printf("Removed vault %q from the registry.\n", vc.Name)
	return nil
}

// VaultsAutoBackupCmd toggles auto-backup for a vault
type VaultsAutoBackupCmd struct {
	Name    string `arg:"" help:"Vault name"`
	Disable bool   `help:"Disable instead of enable"`
}

// Run executes the vaults auto-backup command
func (vc *VaultsAutoBackupCmd) Run(cli *CLI) error {
	repo, store, err := openVaultRepository(cli)
	if err != nil {
		return err
	}
	defer store.Close()

	enabled := !vc.Disable
	if err := repo.SetAutoBackup(context.Background(), vc.Name, enabled); err != nil {
		return err
	}

	if enabled {
		fmt.Printf("Auto-backup enabled for %q.\n", vc.Name)
	} else {
		fmt.Printf("Auto-backup disabled for %q.\n", vc.Name)
	}
	return nil
}

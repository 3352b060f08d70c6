package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"timeline/domain"
	"timeline/logging"
	"timeline/ports"
)

// TimelineFactory builds a Timeline for a vault path. The scheduler caches
// the instances it creates so repeated runs against the same vault share
// one mutation mutex.
type TimelineFactory func(path string) *Timeline

// BackupScheduler periodically captures and backs up every vault with
// auto-backup enabled. It holds no special rights: each run goes through
// the same Timeline instances and the same serialization discipline as any
// user-initiated call.
type BackupScheduler struct {
	vaults   ports.VaultRepository
	factory  TimelineFactory
	interval time.Duration

	mu        sync.Mutex
	timelines map[string]*Timeline
	stop      chan struct{}
	done      chan struct{}
}

// NewBackupScheduler creates a scheduler over the given vault registry
func NewBackupScheduler(vaults ports.VaultRepository, factory TimelineFactory, interval time.Duration) *BackupScheduler {
	return &BackupScheduler{
		vaults:    vaults,
		factory:   factory,
		interval:  interval,
		timelines: make(map[string]*Timeline),
	}
}

// Start launches the scheduling loop. Stop ends it.
func (s *BackupScheduler) Start(ctx context.Context) {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		logging.Logger.Info("Auto-backup scheduler started", "interval", s.interval.String())
		for {
			select {
			case <-ticker.C:
				s.RunOnce(ctx)
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the scheduling loop and waits for the current run to finish
func (s *BackupScheduler) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	logging.Logger.Info("Auto-backup scheduler stopped")
}

// RunOnce captures and backs up every auto-backup vault a single time
func (s *BackupScheduler) RunOnce(ctx context.Context) {
	runID := uuid.New().String()

	vaults, err := s.vaults.List(ctx)
	if err != nil {
		logging.Logger.Error("Failed to list vaults for auto-backup", "error", err, "run_id", runID)
		return
	}

	for _, vault := range vaults {
		if !vault.AutoBackup {
			continue
		}
		s.backupVault(ctx, runID, vault)
	}
}

func (s *BackupScheduler) backupVault(ctx context.Context, runID string, vault domain.Vault) {
	tl := s.timelineFor(vault.Path)

	now := time.Now()
	message := "timeline auto capture " + now.Format("2006-01-02 15:04")

	capture := tl.Capture(ctx, message)
	switch {
	case capture.Ok:
		logging.Logger.Info("Auto capture created",
			"run_id", runID, "vault", vault.Name, "commit", capture.CommitID)
		if err := s.vaults.TouchCapture(ctx, vault.Name, now); err != nil {
			logging.Logger.Warn("Failed to record capture time",
				"error", err, "vault", vault.Name)
		}
	case capture.Kind == domain.KindNothingToCapture:
		// Quiet vault; still worth pushing anything captured manually
	default:
		logging.Logger.Warn("Auto capture failed",
			"run_id", runID, "vault", vault.Name, "kind", string(capture.Kind), "message", capture.Message)
		return
	}

	backup := tl.Backup(ctx)
	if !backup.Ok && backup.Kind != domain.KindNoRemoteConfigured {
		logging.Logger.Warn("Auto backup failed",
			"run_id", runID, "vault", vault.Name, "kind", string(backup.Kind), "message", backup.Message)
		return
	}
	if backup.Ok && backup.Sent > 0 {
		logging.Logger.Info("Auto backup sent captures",
			"run_id", runID, "vault", vault.Name, "sent", backup.Sent)
	}
}

func (s *BackupScheduler) timelineFor(path string) *Timeline {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tl, ok := s.timelines[path]; ok {
		return tl
	}
	tl := s.factory(path)
	s.timelines[path] = tl
	return tl
}

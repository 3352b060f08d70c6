package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"timeline/logging"
	"timeline/paths"
)

// gormLogger wraps the timeline logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

// LogMode sets the log level
func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

// Info logs info messages
func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

// Warn logs warn messages
func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

// Error logs error messages
func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace logs SQL queries - only in debug mode
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

// newGormLogger creates a GORM logger that respects timeline's debug settings
func newGormLogger() logger.Interface {
	if os.Getenv("TIMELINE_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// Store provides thread-safe ACID access to the vault registry
type Store struct {
	db *gorm.DB
}

// NewStore creates a new storage instance with WAL mode enabled
func NewStore(dbPath string) (*Store, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false, // Disable to avoid transaction conflicts
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&VaultRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate vault schema: %w", err)
	}

	// SQLite with WAL mode can handle multiple readers + 1 writer
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &Store{db: db}, nil
}

// withRetry retries an operation when SQLite reports the database as busy
// or locked, which WAL mode can still surface under write contention
func withRetry(fn func() error) error {
	const attempts = 3

	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if !errors.As(err, &sqliteErr) {
			return err
		}
		if sqliteErr.Code != sqlite3.ErrBusy && sqliteErr.Code != sqlite3.ErrLocked {
			return err
		}

		time.Sleep(time.Duration(i+1) * 50 * time.Millisecond)
	}
	return err
}

// AddVault inserts a vault record
func (s *Store) AddVault(ctx context.Context, record VaultRecord) error {
	return withRetry(func() error {
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return fmt.Errorf("failed to add vault: %w", err)
		}
		return nil
	})
}

// GetVault loads a vault record by name
func (s *Store) GetVault(ctx context.Context, name string) (VaultRecord, error) {
	var record VaultRecord
	err := s.db.WithContext(ctx).First(&record, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VaultRecord{}, fmt.Errorf("vault %q not found", name)
		}
		return VaultRecord{}, fmt.Errorf("failed to load vault: %w", err)
	}
	return record, nil
}

// ListVaults loads all vault records ordered by name
func (s *Store) ListVaults(ctx context.Context) ([]VaultRecord, error) {
	var records []VaultRecord
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list vaults: %w", err)
	}
	return records, nil
}

// RemoveVault deletes a vault record by name
func (s *Store) RemoveVault(ctx context.Context, name string) error {
	return withRetry(func() error {
		if err := s.db.WithContext(ctx).Delete(&VaultRecord{}, "name = ?", name).Error; err != nil {
			return fmt.Errorf("failed to remove vault: %w", err)
		}
		return nil
	})
}

// SetAutoBackup toggles the auto-backup flag for a vault
func (s *Store) SetAutoBackup(ctx context.Context, name string, enabled bool) error {
	return withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&VaultRecord{}).
			Where("name = ?", name).
			Update("auto_backup", enabled)
		if result.Error != nil {
			return fmt.Errorf("failed to update auto-backup: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("vault %q not found", name)
		}
		return nil
	})
}

// TouchCapture records the time of the latest capture for a vault
func (s *Store) TouchCapture(ctx context.Context, name string, at time.Time) error {
	return withRetry(func() error {
		result := s.db.WithContext(ctx).Model(&VaultRecord{}).
			Where("name = ?", name).
			Update("last_capture_at", at)
		if result.Error != nil {
			return fmt.Errorf("failed to record capture time: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("vault %q not found", name)
		}
		return nil
	})
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package migration

import (
	"context"
	"errors"

	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion identifies the schema this build expects. Any
	// other recorded version drops both record tables and recreates them;
	// there is no incremental migration path.
	CurrentSchemaVersion = "1.0.0"
)

// Manager performs the one-time schema creation and seeding for the
// record store. Initialize is idempotent: running it against an
// already-initialized store at the current version changes nothing.
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Initialize ensures both record tables exist and are seeded. On the first
// run it creates the schema, inserts the sample records, and stamps the
// schema version. On a version mismatch it drops both tables and rebuilds
// them from scratch before re-seeding.
func (m *Manager) Initialize(ctx context.Context) error {
	m.logger.Info("Initializing record store schema", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.SchemaVersion{}); err != nil {
		m.logger.Error("Failed to create schema version table", map[string]any{
			"error": err.Error(),
		})
		return errs.NewStorageError("migrate", err)
	}

	currentVersion, err := m.currentVersion(ctx)
	if err != nil {
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Schema already at target version, skipping initialization", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if currentVersion != "" {
		// Version bump: drop and recreate, matching the original helper's
		// onUpgrade behavior.
		m.logger.Warn("Schema version mismatch, dropping record tables", map[string]any{
			"found_version":  currentVersion,
			"target_version": CurrentSchemaVersion,
		})
		if err := m.dropRecordTables(ctx); err != nil {
			return err
		}
	}

	if err := m.db.WithContext(ctx).AutoMigrate(&model.User{}, &model.Transaction{}); err != nil {
		m.logger.Error("Failed to create record tables", map[string]any{
			"error": err.Error(),
		})
		return errs.NewStorageError("migrate", err)
	}

	if err := m.seedSampleData(ctx); err != nil {
		return err
	}

	if err := m.setVersion(ctx, CurrentSchemaVersion, "Initial schema creation and seeding"); err != nil {
		return err
	}

	m.logger.Info("Record store initialized", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// currentVersion returns the most recently stamped schema version, or the
// empty string for a fresh store.
func (m *Manager) currentVersion(ctx context.Context) (string, error) {
	var version model.SchemaVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", errs.NewStorageError("read schema version", result.Error)
	}

	return version.Version, nil
}

// setVersion stamps a new schema version
func (m *Manager) setVersion(ctx context.Context, version string, details string) error {
	record := model.SchemaVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	if result := m.db.WithContext(ctx).Create(&record); result.Error != nil {
		m.logger.Error("Failed to stamp schema version", map[string]any{
			"version": version,
			"error":   result.Error.Error(),
		})
		return errs.NewStorageError("stamp schema version", result.Error)
	}
	return nil
}

// dropRecordTables removes both record tables. Transactions go first so
// the declared foreign key never dangles mid-drop.
func (m *Manager) dropRecordTables(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()
	for _, table := range []interface{}{&model.Transaction{}, &model.User{}} {
		if migrator.HasTable(table) {
			if err := migrator.DropTable(table); err != nil {
				return errs.NewStorageError("drop table", err)
			}
		}
	}
	return nil
}

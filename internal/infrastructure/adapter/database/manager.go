package database

import (
	"context"
	"fmt"
	"time"

	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Manager owns the SQLite connection lifecycle: open on Connect, release
// on Close, with every failure in between surfaced as ErrStorageUnavailable.
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the store file and verifies it is reachable
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Opening record store", map[string]any{
		"path": m.config.Path,
	})

	gormDB, err := gorm.Open(sqlite.Open(m.config.DSN()), &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.config.LogLevel),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
	})
	if err != nil {
		m.logger.Error("Failed to open record store", map[string]any{
			"path":  m.config.Path,
			"error": err.Error(),
		})
		return nil, errs.NewStorageError("open", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, errs.NewStorageError("open", err)
	}

	// SQLite allows a single writer; a pool of one connection avoids
	// lock contention entirely and keeps :memory: stores stable.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	ctx, cancel := m.timeProvider.WithTimeout(context.Background(), m.config.QueryTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errs.NewStorageError("ping", err)
	}

	m.logger.Info("Record store opened", map[string]any{
		"path":            m.config.Path,
		"busy_timeout":    m.config.BusyTimeout.String(),
		"query_timeout_s": m.config.QueryTimeout.Seconds(),
	})

	m.db = gormDB
	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing record store", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
}

package migration

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/logger"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/model"
	timeadapter "github.com/commupay/rewards-wallet/internal/infrastructure/adapter/time"
)

func newTestManager(t *testing.T) (*gorm.DB, *Manager) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, NewManager(db, logger.NewNoopLogger(), timeadapter.NewRealTimeProvider())
}

func TestManager_Initialize(t *testing.T) {
	t.Run("should create schema and seed sample records on first run", func(t *testing.T) {
		db, manager := newTestManager(t)

		require.NoError(t, manager.Initialize(context.Background()))

		var user model.User
		require.NoError(t, db.Where("email = ?", "sophia.carter@email.com").First(&user).Error)
		assert.Equal(t, "Sophia Carter", user.Name)
		assert.Equal(t, 1250.00, user.Balance)
		assert.Equal(t, 0.034, user.BTCBalance)

		var transactions []model.Transaction
		require.NoError(t, db.Where("user_id = ?", user.ID).Order("date DESC").Find(&transactions).Error)
		require.Len(t, transactions, 3)
		assert.Equal(t, "2024-03-15", transactions[0].Date)
		assert.Equal(t, "Meeting Attendance Incentive", transactions[0].Description)
		assert.Equal(t, 50.00, transactions[0].Amount)
		assert.Equal(t, "2024-03-10", transactions[1].Date)
		assert.Equal(t, "Referral Bonus", transactions[1].Description)
		assert.Equal(t, 100.00, transactions[1].Amount)
		assert.Equal(t, "2024-03-05", transactions[2].Date)
		for _, tx := range transactions {
			assert.True(t, tx.IsPositive)
		}

		var version model.SchemaVersion
		require.NoError(t, db.Order("applied_at desc").First(&version).Error)
		assert.Equal(t, CurrentSchemaVersion, version.Version)
	})

	t.Run("should be idempotent at the current version", func(t *testing.T) {
		db, manager := newTestManager(t)

		require.NoError(t, manager.Initialize(context.Background()))
		require.NoError(t, manager.Initialize(context.Background()))

		var userCount, txCount int64
		require.NoError(t, db.Model(&model.User{}).Count(&userCount).Error)
		require.NoError(t, db.Model(&model.Transaction{}).Count(&txCount).Error)
		assert.Equal(t, int64(1), userCount)
		assert.Equal(t, int64(3), txCount)
	})

	t.Run("should drop and rebuild record tables on version mismatch", func(t *testing.T) {
		db, manager := newTestManager(t)

		require.NoError(t, manager.Initialize(context.Background()))

		// Extra record that must not survive the rebuild.
		extra := model.User{Name: "Leftover", Email: "leftover@email.com"}
		require.NoError(t, db.Create(&extra).Error)

		// Rewind the stamp so the next run sees an outdated schema.
		require.NoError(t, db.Model(&model.SchemaVersion{}).
			Where("version = ?", CurrentSchemaVersion).
			Update("version", "0.9.0").Error)

		require.NoError(t, manager.Initialize(context.Background()))

		var userCount int64
		require.NoError(t, db.Model(&model.User{}).Count(&userCount).Error)
		assert.Equal(t, int64(1), userCount, "rebuild keeps only the seed user")

		var user model.User
		require.NoError(t, db.First(&user).Error)
		assert.Equal(t, "sophia.carter@email.com", user.Email)

		var txCount int64
		require.NoError(t, db.Model(&model.Transaction{}).Count(&txCount).Error)
		assert.Equal(t, int64(3), txCount)

		var version model.SchemaVersion
		require.NoError(t, db.Order("applied_at desc").First(&version).Error)
		assert.Equal(t, CurrentSchemaVersion, version.Version)
	})

	t.Run("should not duplicate seed rows when seed user already exists", func(t *testing.T) {
		db, manager := newTestManager(t)

		require.NoError(t, db.AutoMigrate(&model.User{}, &model.Transaction{}))
		pre := seedUser
		require.NoError(t, db.Create(&pre).Error)

		require.NoError(t, manager.Initialize(context.Background()))

		var userCount int64
		require.NoError(t, db.Model(&model.User{}).Count(&userCount).Error)
		assert.Equal(t, int64(1), userCount)
	})
}

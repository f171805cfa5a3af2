package migration

import (
	"context"
	"errors"

	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Sample records shipped with the demo. Inserted exactly once, when the
// record tables are first created.
var (
	seedUser = model.User{
		Name:       "Sophia Carter",
		Email:      "sophia.carter@email.com",
		Balance:    1250.00,
		BTCBalance: 0.034,
	}

	seedTransactions = []model.Transaction{
		{Date: "2024-03-15", Description: "Meeting Attendance Incentive", Amount: 50.00, IsPositive: true},
		{Date: "2024-03-10", Description: "Referral Bonus", Amount: 100.00, IsPositive: true},
		{Date: "2024-03-05", Description: "Meeting Attendance Incentive", Amount: 50.00, IsPositive: true},
	}
)

// seedSampleData inserts the sample user and her transactions. Safe to
// call on a store that already carries the seed: the user's unique email
// is the guard against double insertion.
func (m *Manager) seedSampleData(ctx context.Context) error {
	var existing model.User
	result := m.db.WithContext(ctx).Where("email = ?", seedUser.Email).First(&existing)
	if result.Error == nil {
		m.logger.Info("Seed data already present, skipping", map[string]any{
			"email": seedUser.Email,
		})
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return errs.NewStorageError("seed lookup", result.Error)
	}

	user := seedUser
	if result := m.db.WithContext(ctx).Create(&user); result.Error != nil {
		m.logger.Error("Failed to insert seed user", map[string]any{
			"email": seedUser.Email,
			"error": result.Error.Error(),
		})
		return errs.NewStorageError("seed user", result.Error)
	}

	for _, tx := range seedTransactions {
		record := tx
		record.UserID = user.ID
		if result := m.db.WithContext(ctx).Create(&record); result.Error != nil {
			m.logger.Error("Failed to insert seed transaction", map[string]any{
				"date":        record.Date,
				"description": record.Description,
				"error":       result.Error.Error(),
			})
			return errs.NewStorageError("seed transaction", result.Error)
		}
	}

	m.logger.Info("Seed data inserted", map[string]any{
		"user_id":      user.ID,
		"transactions": len(seedTransactions),
	})
	return nil
}

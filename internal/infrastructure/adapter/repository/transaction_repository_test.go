package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/logger"
)

func TestTransactionRepository_ListByUser(t *testing.T) {
	t.Run("should return transactions ordered by date descending", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())

		// Insert out of order to prove the ordering comes from the query.
		seeds := []entity.Transaction{
			{UserID: 1, Date: "2024-03-05", Description: "Meeting Attendance Incentive", Amount: 50.00, IsPositive: true},
			{UserID: 1, Date: "2024-03-15", Description: "Meeting Attendance Incentive", Amount: 50.00, IsPositive: true},
			{UserID: 1, Date: "2024-03-10", Description: "Referral Bonus", Amount: 100.00, IsPositive: true},
		}
		for i := range seeds {
			require.NoError(t, repo.Create(context.Background(), &seeds[i]))
		}

		transactions, err := repo.ListByUser(context.Background(), 1)

		assert.NoError(t, err)
		require.Len(t, transactions, 3)
		assert.Equal(t, "2024-03-15", transactions[0].Date)
		assert.Equal(t, "2024-03-10", transactions[1].Date)
		assert.Equal(t, "2024-03-05", transactions[2].Date)
		assert.Equal(t, "Referral Bonus", transactions[1].Description)
		assert.Equal(t, 100.00, transactions[1].Amount)
	})

	t.Run("should only return the given user's transactions", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())

		mine := entity.Transaction{UserID: 1, Date: "2024-03-15", Description: "Mine", Amount: 10, IsPositive: true}
		theirs := entity.Transaction{UserID: 2, Date: "2024-03-16", Description: "Theirs", Amount: 20, IsPositive: true}
		require.NoError(t, repo.Create(context.Background(), &mine))
		require.NoError(t, repo.Create(context.Background(), &theirs))

		transactions, err := repo.ListByUser(context.Background(), 1)

		assert.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, "Mine", transactions[0].Description)
	})

	t.Run("should return empty non-nil slice for user with no transactions", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())

		transactions, err := repo.ListByUser(context.Background(), 42)

		assert.NoError(t, err)
		assert.NotNil(t, transactions)
		assert.Empty(t, transactions)
	})
}

func TestTransactionRepository_Create(t *testing.T) {
	t.Run("should assign an ID on insert", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTransactionRepository(db, logger.NewNoopLogger())

		tx := entity.Transaction{UserID: 1, Date: "2024-03-15", Description: "Bonus", Amount: 50, IsPositive: true}
		err := repo.Create(context.Background(), &tx)

		assert.NoError(t, err)
		assert.NotZero(t, tx.ID)
	})
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/commupay/rewards-wallet/internal/domain/error"
)

func TestNewTransaction(t *testing.T) {
	t.Run("should create transaction with valid fields", func(t *testing.T) {
		tx, err := NewTransaction(1, "2024-03-15", "Meeting Attendance Incentive", 50.00, true)

		assert.NoError(t, err)
		assert.NotNil(t, tx)
		assert.Equal(t, uint64(0), tx.ID)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, "2024-03-15", tx.Date)
		assert.Equal(t, "Meeting Attendance Incentive", tx.Description)
		assert.Equal(t, 50.00, tx.Amount)
		assert.True(t, tx.IsPositive)
	})

	t.Run("should reject zero user ID", func(t *testing.T) {
		tx, err := NewTransaction(0, "2024-03-15", "Bonus", 50.00, true)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("should reject empty date", func(t *testing.T) {
		tx, err := NewTransaction(1, "", "Bonus", 50.00, true)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("should reject empty description", func(t *testing.T) {
		tx, err := NewTransaction(1, "2024-03-15", "", 50.00, true)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrInvalidDescription)
	})

	t.Run("should reject negative amount magnitude", func(t *testing.T) {
		tx, err := NewTransaction(1, "2024-03-15", "Bonus", -50.00, true)

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		tx, err := NewTransaction(1, "2024-03-15", "Adjustment", 0, false)

		assert.NoError(t, err)
		assert.Equal(t, 0.0, tx.Amount)
	})
}

func TestTransaction_SignedAmount(t *testing.T) {
	t.Run("credit carries positive sign", func(t *testing.T) {
		tx, err := NewTransaction(1, "2024-03-10", "Referral Bonus", 100.00, true)

		assert.NoError(t, err)
		assert.Equal(t, 100.00, tx.SignedAmount())
		assert.True(t, tx.IsCredit())
		assert.False(t, tx.IsDebit())
	})

	t.Run("debit carries negative sign from the flag, not the magnitude", func(t *testing.T) {
		tx, err := NewTransaction(1, "2024-03-10", "Redemption", 25.00, false)

		assert.NoError(t, err)
		assert.Equal(t, 25.00, tx.Amount)
		assert.Equal(t, -25.00, tx.SignedAmount())
		assert.False(t, tx.IsCredit())
		assert.True(t, tx.IsDebit())
	})
}

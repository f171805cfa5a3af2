package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/logger"
	mockpersistence "github.com/commupay/rewards-wallet/mocks/port/persistence"
)

func newTestStore() (*mockpersistence.MockUserRepository, *mockpersistence.MockTransactionRepository, *Store) {
	users := new(mockpersistence.MockUserRepository)
	transactions := new(mockpersistence.MockTransactionRepository)
	store := NewStore(users, transactions, logger.NewNoopLogger()).(*Store)
	return users, transactions, store
}

func TestStore_FindUserByEmail(t *testing.T) {
	t.Run("should return user on exact email match", func(t *testing.T) {
		users, _, store := newTestStore()
		expected := &entity.User{
			ID:         1,
			Name:       "Sophia Carter",
			Email:      "sophia.carter@email.com",
			Balance:    1250.00,
			BTCBalance: 0.034,
		}
		users.On("FindByEmail", mock.Anything, "sophia.carter@email.com").Return(expected, nil)

		user, err := store.FindUserByEmail(context.Background(), "sophia.carter@email.com")

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
		users.AssertExpectations(t)
	})

	t.Run("should pass through not found", func(t *testing.T) {
		users, _, store := newTestStore()
		users.On("FindByEmail", mock.Anything, "nobody@email.com").Return(nil, errs.ErrUserNotFound)

		user, err := store.FindUserByEmail(context.Background(), "nobody@email.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		users.AssertExpectations(t)
	})

	t.Run("should pass through storage failures", func(t *testing.T) {
		users, _, store := newTestStore()
		storageErr := errs.NewStorageError("find user by email", assert.AnError)
		users.On("FindByEmail", mock.Anything, "sophia.carter@email.com").Return(nil, storageErr)

		user, err := store.FindUserByEmail(context.Background(), "sophia.carter@email.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		users.AssertExpectations(t)
	})

	t.Run("should reject empty email without hitting the repository", func(t *testing.T) {
		users, _, store := newTestStore()

		user, err := store.FindUserByEmail(context.Background(), "")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestStore_ListTransactionsForUser(t *testing.T) {
	t.Run("should return transactions for the user", func(t *testing.T) {
		_, transactions, store := newTestStore()
		expected := []entity.Transaction{
			{ID: 1, UserID: 1, Date: "2024-03-15", Description: "Meeting Attendance Incentive", Amount: 50.00, IsPositive: true},
			{ID: 2, UserID: 1, Date: "2024-03-10", Description: "Referral Bonus", Amount: 100.00, IsPositive: true},
		}
		transactions.On("ListByUser", mock.Anything, uint64(1)).Return(expected, nil)

		got, err := store.ListTransactionsForUser(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, expected, got)
		transactions.AssertExpectations(t)
	})

	t.Run("should return empty slice for user with no transactions", func(t *testing.T) {
		_, transactions, store := newTestStore()
		transactions.On("ListByUser", mock.Anything, uint64(7)).Return([]entity.Transaction{}, nil)

		got, err := store.ListTransactionsForUser(context.Background(), 7)

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("should reject zero user ID without hitting the repository", func(t *testing.T) {
		_, transactions, store := newTestStore()

		got, err := store.ListTransactionsForUser(context.Background(), 0)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		transactions.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})

	t.Run("should pass through storage failures", func(t *testing.T) {
		_, transactions, store := newTestStore()
		storageErr := errs.NewStorageError("list transactions", assert.AnError)
		transactions.On("ListByUser", mock.Anything, uint64(1)).Return(nil, storageErr)

		got, err := store.ListTransactionsForUser(context.Background(), 1)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}

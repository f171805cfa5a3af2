package persistence

import (
	"context"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a testify mock for the TransactionRepository port
type MockTransactionRepository struct {
	mock.Mock
}

// Create inserts a new transaction
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// ListByUser returns every transaction owned by the given user
func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

package usecase

import (
	"context"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockRecordStore is a testify mock for the RecordStore port
type MockRecordStore struct {
	mock.Mock
}

// FindUserByEmail performs an exact-match lookup on the unique email key
func (m *MockRecordStore) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// ListTransactionsForUser returns the user's transactions ordered by date descending
func (m *MockRecordStore) ListTransactionsForUser(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

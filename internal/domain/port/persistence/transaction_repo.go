package persistence

import (
	"context"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
)

// TransactionRepository defines the persistence operations for ledger entries.
type TransactionRepository interface {
	// Create inserts a new transaction and fills in the generated ID.
	// Only reachable during seeding; there is no runtime create path.
	//
	// Possible errors:
	// - ErrStorageUnavailable: the backend could not serve the write
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns every transaction owned by the given user,
	// ordered by date descending. A user with no transactions yields an
	// empty slice, not an error.
	//
	// Possible errors:
	// - ErrStorageUnavailable: the backend could not serve the read
	ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error)
}

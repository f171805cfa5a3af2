package usecase

import (
	"context"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
)

// RecordStore is the read contract over the seeded user and transaction
// records. It is the only boundary the session controller and the HTTP
// shell consume.
type RecordStore interface {
	// FindUserByEmail performs an exact-match lookup on the unique email
	// key. A miss is reported as ErrUserNotFound, never invented into a
	// failure.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// ListTransactionsForUser returns the user's transactions ordered by
	// date descending; empty slice when none match.
	ListTransactionsForUser(ctx context.Context, userID uint64) ([]entity.Transaction, error)
}

package records

import (
	"context"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	coreport "github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/commupay/rewards-wallet/internal/domain/port/persistence"
	"github.com/commupay/rewards-wallet/internal/domain/port/usecase"
)

// Store owns read access to the user and transaction records. Schema
// creation and seeding happen in the infrastructure migration layer before
// a Store is constructed, so every operation here is a plain lookup.
type Store struct {
	users        persistence.UserRepository
	transactions persistence.TransactionRepository
	logger       coreport.Logger
}

// NewStore creates a record store over the given repositories
func NewStore(
	users persistence.UserRepository,
	transactions persistence.TransactionRepository,
	logger coreport.Logger,
) usecase.RecordStore {
	return &Store{
		users:        users,
		transactions: transactions,
		logger:       logger,
	}
}

// FindUserByEmail performs an exact-match lookup on the unique email key.
// A miss surfaces as ErrUserNotFound; the caller decides whether absence
// matters. Storage failures propagate unchanged.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, errs.ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			s.logger.Debug("No user for email", map[string]any{
				"email": email,
			})
			return nil, err
		}
		s.logger.Error("Failed to look up user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	return user, nil
}

// ListTransactionsForUser returns the user's transactions ordered by date
// descending. A user with no transactions gets an empty slice.
func (s *Store) ListTransactionsForUser(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	transactions, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Transactions listed", map[string]any{
		"user_id": userID,
		"count":   len(transactions),
	})

	return transactions, nil
}

package persistence

import (
	"context"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
)

// UserRepository defines the persistence operations for user records.
type UserRepository interface {
	// FindByEmail retrieves the user whose email exactly matches the given
	// key. Email is unique, so at most one record can match.
	//
	// Possible errors:
	// - ErrUserNotFound: no user has this email (absence, not a failure)
	// - ErrStorageUnavailable: the backend could not serve the read
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts a new user and fills in the generated ID.
	// Only reachable during seeding; there is no runtime create path.
	//
	// Possible errors:
	// - ErrDuplicateEmail: a user with this email already exists
	// - ErrStorageUnavailable: the backend could not serve the write
	Create(ctx context.Context, user *entity.User) error
}
